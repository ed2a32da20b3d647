package models

// ScreeningRecord is the flat form state for one screening session: internal
// semantic field keys mapped to scalar values (all carried as strings, the way
// the tracker platform transmits them), plus the external linkage references
// once the record has been persisted.
type ScreeningRecord struct {
	Fields  map[string]string `json:"fields"`
	OrgUnit string            `json:"org_unit"`

	ExternalEntityID     string `json:"external_entity_id,omitempty"`
	ExternalEnrollmentID string `json:"external_enrollment_id,omitempty"`
	ExternalRecordID     string `json:"external_record_id,omitempty"`
}

func NewScreeningRecord() *ScreeningRecord {
	return &ScreeningRecord{Fields: map[string]string{}}
}

// Merge shallow-merges a partial update into the record. This is the only
// mutation path; components never write Fields directly.
func (r *ScreeningRecord) Merge(partial map[string]string) {
	if r.Fields == nil {
		r.Fields = map[string]string{}
	}
	for key, value := range partial {
		r.Fields[key] = value
	}
}

// Reset returns the record to an empty draft, preserving the org unit
// selection so the operator can keep entering records for the same site.
func (r *ScreeningRecord) Reset() {
	orgUnit := r.OrgUnit
	*r = ScreeningRecord{
		Fields:  map[string]string{},
		OrgUnit: orgUnit,
	}
}

func (r *ScreeningRecord) Get(key string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[key]
}
