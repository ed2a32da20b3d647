package models

// RiskProfile is derived from a ScreeningRecord on demand and never cached:
// any answer change invalidates it.
type RiskProfile struct {
	Score           int      `json:"score"`
	Level           string   `json:"level"`
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}
