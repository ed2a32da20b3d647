package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"oneof":      "must be one of [%s]",
	"numeric":    "must be a number",
	"datetime":   "must be a valid date",
	"sex":        "must be either 'Male' or 'Female'",
	"answer":     "must be either 'Yes' or 'No'",
	"not_future": "must not be in the future",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientScreeningValidation           = "some answers are missing or invalid"
	ErrClientSchemaUnavailable             = "screening form definitions are not loaded yet, refresh metadata and retry"
	ErrClientRecordModified                = "record was modified by another user, refresh and retry"
	ErrClientPlatformUnreachable           = "cannot reach the case-tracking platform, check your connection"
	ErrClientSaveInProgress                = "a save for this record is already in progress"
	ErrClientScreeningNotFound             = "screening record not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate   = "cannot parse the requested date"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Tracker platform messages
	ErrDevTrackerCreateResource = "failed to create %s on tracker platform"
	ErrDevTrackerUpdateResource = "failed to update %s on tracker platform"
	ErrDevTrackerGetResource    = "failed to get %s from tracker platform"
	ErrDevTrackerNoReference    = "tracker platform returned no reference for created %s"
	ErrDevTrackerDecodeResponse = "failed to decode tracker platform response for %s"
	ErrDevTrackerConflict       = "tracker platform reported a conflict for %s"
	ErrDevTrackerSchemaEmpty    = "resolved mapping table is empty"
	ErrDevTrackerUpdateNoEffect = "tracker platform accepted the update but applied nothing"

	// Server messages
	ErrDevServerProcess          = "server cannot process the request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to set data with NX semantics into redis"
	ErrDevRedisUnlock     = "failed to release redis lock"
	ErrDevRedisGetNoData  = "no data found in redis for key %s"

	// Mongo messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)
