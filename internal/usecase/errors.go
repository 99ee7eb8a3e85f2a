package usecase

import "errors"

var (
	// ErrInvalidInput marks caller mistakes (bad request bodies).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal marks store failures. Callers see a generic server error;
	// the cause is logged where it happens.
	ErrInternal = errors.New("internal error")
)
