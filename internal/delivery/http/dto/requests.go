// Package dto declares the HTTP request and response shapes. Request structs
// carry the validation contract for their resource in struct tags.
package dto

// CreateSkillRequest: subject non-empty, level within [0,100], logo optional
// but a URL when present. Empty-string logo is allowed and stored as null.
type CreateSkillRequest struct {
	Subject string `json:"subject" validate:"required"`
	Level   int    `json:"level" validate:"gte=0,lte=100"`
	Logo    string `json:"logo" validate:"omitempty,url"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	URL         string `json:"url" validate:"required"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
}

// CreateExperienceRequest: points default to empty and every given point must
// be non-empty.
type CreateExperienceRequest struct {
	Company string   `json:"company" validate:"required"`
	Role    string   `json:"role" validate:"required"`
	Period  string   `json:"period" validate:"required"`
	Points  []string `json:"points" validate:"omitempty,dive,required"`
}
