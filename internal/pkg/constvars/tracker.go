package constvars

// Resource paths on the external case-tracking platform.
const (
	TrackerPathTrackedEntities   = "/api/trackedEntityInstances"
	TrackerPathEnrollments       = "/api/enrollments"
	TrackerPathEvents            = "/api/events"
	TrackerPathProgramStages     = "/api/programStages"
	TrackerPathPrograms          = "/api/programs"
	TrackerPathOrganisationUnits = "/api/organisationUnits"
)

// Resource names used in error messages.
const (
	TrackerResourceTrackedEntity    = "tracked entity"
	TrackerResourceEnrollment       = "enrollment"
	TrackerResourceEvent            = "event"
	TrackerResourceProgramStage     = "program stage"
	TrackerResourceProgram          = "program"
	TrackerResourceOrganisationUnit = "organisation unit"
)

// Value types a field definition can carry. A definition with no value
// type is treated as TrackerValueTypeText.
const (
	TrackerValueTypeText      = "TEXT"
	TrackerValueTypeLongText  = "LONG_TEXT"
	TrackerValueTypeNumber    = "NUMBER"
	TrackerValueTypeInteger   = "INTEGER"
	TrackerValueTypeDate      = "DATE"
	TrackerValueTypeBoolean   = "BOOLEAN"
	TrackerValueTypeTrueOnly  = "TRUE_ONLY"
	TrackerValueTypeOptionSet = "OPTION_SET"
)

const (
	TrackerEventStatusActive    = "ACTIVE"
	TrackerEventStatusCompleted = "COMPLETED"
)

const (
	TrackerImportStatusSuccess = "SUCCESS"
	TrackerImportStatusOK      = "OK"
	TrackerImportStatusError   = "ERROR"
)

const (
	TrackerDateLayout = "2006-01-02"
)
