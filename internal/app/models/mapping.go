package models

import "time"

// FieldMapping binds one internal semantic key to the external platform's
// field identifier and value type. OptionCodes is only populated for
// OPTION_SET fields and maps option names and codes (lowercased) to the code
// actually sent on the wire.
type FieldMapping struct {
	InternalKey string            `json:"internal_key"`
	ExternalID  string            `json:"external_id"`
	ValueType   string            `json:"value_type"`
	OptionCodes map[string]string `json:"option_codes,omitempty"`
}

// MappingSnapshot is the immutable result of one schema resolution. It is
// built once per fetch, shared read-only, and replaced wholesale on refresh;
// an in-flight save keeps working against the snapshot it captured.
type MappingSnapshot struct {
	DataElements map[string]FieldMapping `json:"data_elements"`
	Attributes   map[string]FieldMapping `json:"attributes"`
	Labels       map[string]string       `json:"labels"`
	ResolvedAt   time.Time               `json:"resolved_at"`
}

func (s *MappingSnapshot) Empty() bool {
	return s == nil || (len(s.DataElements) == 0 && len(s.Attributes) == 0)
}
