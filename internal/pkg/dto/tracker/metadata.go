package tracker

// Schema metadata as served by the platform's metadata endpoints. Two
// independent sources describe collectible fields: stage-level data elements
// and entity-level attributes.

type Translation struct {
	Property string `json:"property"`
	Locale   string `json:"locale"`
	Value    string `json:"value"`
}

type Option struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type OptionSet struct {
	ID      string   `json:"id"`
	Options []Option `json:"options,omitempty"`
}

type DataElement struct {
	ID           string        `json:"id"`
	DisplayName  string        `json:"displayName"`
	ValueType    string        `json:"valueType,omitempty"`
	OptionSet    *OptionSet    `json:"optionSet,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
}

type ProgramStageDataElement struct {
	Compulsory  bool        `json:"compulsory"`
	DataElement DataElement `json:"dataElement"`
}

type TrackedEntityAttribute struct {
	ID           string        `json:"id"`
	DisplayName  string        `json:"displayName"`
	ValueType    string        `json:"valueType,omitempty"`
	OptionSet    *OptionSet    `json:"optionSet,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
}

type ProgramTrackedEntityAttribute struct {
	Mandatory              bool                   `json:"mandatory"`
	TrackedEntityAttribute TrackedEntityAttribute `json:"trackedEntityAttribute"`
}

type StageDataElementsResponse struct {
	ProgramStageDataElements []ProgramStageDataElement `json:"programStageDataElements"`
}

type EntityAttributesResponse struct {
	ProgramTrackedEntityAttributes []ProgramTrackedEntityAttribute `json:"programTrackedEntityAttributes"`
}

type OrganisationUnit struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Level       int    `json:"level,omitempty"`
	Path        string `json:"path,omitempty"`
}

type OrganisationUnitsResponse struct {
	OrganisationUnits []OrganisationUnit `json:"organisationUnits"`
}
