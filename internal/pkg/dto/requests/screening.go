package requests

// CreateScreening carries a full draft record: internal field keys to values
// plus the operator's org unit selection.
type CreateScreening struct {
	OrgUnit string            `json:"org_unit" validate:"required"`
	Fields  map[string]string `json:"fields" validate:"required"`
}

// UpdateScreening carries the operator's edited values for an existing
// record. The event id arrives as a URL parameter.
type UpdateScreening struct {
	EventID string            `json:"-" validate:"required"`
	Fields  map[string]string `json:"fields" validate:"required"`
}

// ScorePreview asks for a risk profile without persisting anything.
type ScorePreview struct {
	Fields map[string]string `json:"fields" validate:"required"`
}

// ClientCodePreview asks for the derived client code for the given identity
// fields. All four are needed; the usecase returns an empty code otherwise.
type ClientCodePreview struct {
	FamilyName  string `json:"family_name"`
	LastName    string `json:"last_name"`
	Sex         string `json:"sex"`
	DateOfBirth string `json:"date_of_birth"`
}
