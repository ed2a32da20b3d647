package config

type InternalConfig struct {
	App       App
	Tracker   Tracker
	Program   Program
	Screening Screening
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	SaveTimeoutInSeconds     int
}

// Tracker holds the connection settings for the external case-tracking
// platform. Timeouts live on the transport; the sync engine treats a timeout
// as a generic failure.
type Tracker struct {
	BaseUrl                 string
	ApiToken                string
	RequestTimeoutInSeconds int
}

// Program identifies the data-collection program, its screening stage and
// the tracked entity type on the external platform.
type Program struct {
	ProgramID         string
	ProgramStageID    string
	TrackedEntityType string
	TargetLocale      string
}

type Screening struct {
	SaveLockTTLInSeconds     int
	MappingCacheTTLInMinutes int
	DraftTTLInHours          int
	ReferralQueue            string
	AuditCollection          string
	ReferralMinimumRiskLevel string
}
