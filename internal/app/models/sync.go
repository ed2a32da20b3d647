package models

import "time"

// DiffEntry is one field actually sent on update: the external identifier and
// the normalized new value.
type DiffEntry struct {
	ExternalID string `json:"external_id"`
	Value      string `json:"value"`
}

// Sync outcomes reported to the caller. Partial is a success with caveats
// (the platform ignored some values), not an error.
const (
	SyncOutcomeCreated   = "created"
	SyncOutcomeUpdated   = "updated"
	SyncOutcomePartial   = "partial"
	SyncOutcomeNoChanges = "no_changes"
	SyncOutcomeFailed    = "failed"
)

// SyncAuditEntry records one create/update attempt against the platform.
type SyncAuditEntry struct {
	ID           string    `bson:"_id" json:"id"`
	RequestID    string    `bson:"request_id" json:"request_id"`
	Operation    string    `bson:"operation" json:"operation"`
	Outcome      string    `bson:"outcome" json:"outcome"`
	StepReached  string    `bson:"step_reached" json:"step_reached"`
	EntityID     string    `bson:"entity_id,omitempty" json:"entity_id,omitempty"`
	EnrollmentID string    `bson:"enrollment_id,omitempty" json:"enrollment_id,omitempty"`
	EventID      string    `bson:"event_id,omitempty" json:"event_id,omitempty"`
	OrgUnit      string    `bson:"org_unit,omitempty" json:"org_unit,omitempty"`
	RiskScore    int       `bson:"risk_score" json:"risk_score"`
	RiskLevel    string    `bson:"risk_level,omitempty" json:"risk_level,omitempty"`
	Conflicts    []string  `bson:"conflicts,omitempty" json:"conflicts,omitempty"`
	UpdatedCount int       `bson:"updated_count" json:"updated_count"`
	IgnoredCount int       `bson:"ignored_count" json:"ignored_count"`
	ErrorDetail  string    `bson:"error_detail,omitempty" json:"error_detail,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
