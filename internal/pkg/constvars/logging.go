package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingStepKey               = "step"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingQueueNameKey          = "queue_name"
	LoggingEntityIDKey           = "entity_id"
	LoggingEnrollmentIDKey       = "enrollment_id"
	LoggingEventIDKey            = "event_id"
	LoggingOrgUnitKey            = "org_unit"
	LoggingRiskLevelKey          = "risk_level"
	LoggingMappingCountKey       = "mapping_count"
	LoggingDiffSizeKey           = "diff_size"
)
