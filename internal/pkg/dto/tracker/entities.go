package tracker

// Wire shapes for writes. Entities carry {attribute, value} pairs; events
// carry {dataElement, value} pairs. All values travel as strings.

type AttributeValue struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type TrackedEntity struct {
	TrackedEntityType string           `json:"trackedEntityType,omitempty"`
	OrgUnit           string           `json:"orgUnit"`
	Attributes        []AttributeValue `json:"attributes"`
}

type Enrollment struct {
	TrackedEntityInstance string `json:"trackedEntityInstance"`
	Program               string `json:"program"`
	OrgUnit               string `json:"orgUnit"`
	EnrollmentDate        string `json:"enrollmentDate"`
	IncidentDate          string `json:"incidentDate,omitempty"`
}

type DataValue struct {
	DataElement string `json:"dataElement"`
	Value       string `json:"value"`
}

type Event struct {
	Event                 string      `json:"event,omitempty"`
	Program               string      `json:"program"`
	ProgramStage          string      `json:"programStage"`
	OrgUnit               string      `json:"orgUnit"`
	EventDate             string      `json:"eventDate"`
	Status                string      `json:"status"`
	TrackedEntityInstance string      `json:"trackedEntityInstance,omitempty"`
	Enrollment            string      `json:"enrollment,omitempty"`
	DataValues            []DataValue `json:"dataValues"`
}
