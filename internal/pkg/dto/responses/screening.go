package responses

import "screening-service/internal/app/models"

type CreateScreening struct {
	Outcome      string              `json:"outcome"`
	EntityID     string              `json:"entity_id"`
	EnrollmentID string              `json:"enrollment_id"`
	EventID      string              `json:"event_id"`
	ClientCode   string              `json:"client_code,omitempty"`
	Risk         *models.RiskProfile `json:"risk,omitempty"`
}

type UpdateScreening struct {
	Outcome      string `json:"outcome"`
	EventID      string `json:"event_id"`
	UpdatedCount int    `json:"updated_count"`
	IgnoredCount int    `json:"ignored_count"`
	DiffSize     int    `json:"diff_size"`
	Message      string `json:"message,omitempty"`
}

type ScreeningRecord struct {
	Record *models.ScreeningRecord `json:"record"`
	Risk   *models.RiskProfile     `json:"risk,omitempty"`
}

type ScorePreview struct {
	Risk *models.RiskProfile `json:"risk"`
}

type ClientCodePreview struct {
	ClientCode string `json:"client_code"`
}
