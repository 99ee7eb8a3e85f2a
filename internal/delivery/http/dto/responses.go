package dto

// Nullable columns surface as JSON null through pointer fields.

type SkillResponse struct {
	ID      int64   `json:"id"`
	Subject string  `json:"subject"`
	Level   int     `json:"level"`
	Logo    *string `json:"logo"`
}

type ProjectResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	Skills      *string `json:"skills"`
}

type ExperienceResponse struct {
	ID      int64    `json:"id"`
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Period  string   `json:"period"`
	Points  []string `json:"points"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
