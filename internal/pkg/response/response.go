// Package response holds the JSON helpers shared by handlers and middleware.
// Successful responses are the raw resource payload; errors use a small
// envelope so clients always get a status, a message, and (for validation
// failures) the field report.
package response

import "github.com/gofiber/fiber/v3"

type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

const (
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageMethodNotAllowed    = "method not allowed"
	MessageValidationFailed    = "validation failed"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func JSON(c fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(payload)
}

func Error(c fiber.Ctx, status int, message string, details any) error {
	st := normalizeStatus(status)
	msg := message
	if msg == "" {
		msg = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorBody{Status: st, Message: msg, Errors: details})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
