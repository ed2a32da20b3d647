package constvars

type ContextKey string

const (
	ResourceScreenings = "screenings"
	ResourceMetadata   = "metadata"
	ResourceOrgUnits   = "org-units"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SCRN_SVC_"
)

const (
	URLParamEventID = "eventID"
)
