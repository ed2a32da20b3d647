package config

import (
	"screening-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "screening"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Phnom_Penh"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			SaveTimeoutInSeconds:     utils.GetEnvInt("APP_SAVE_TIMEOUT_IN_SECONDS", 30),
		},
		Tracker: Tracker{
			BaseUrl:                 utils.GetEnvString("TRACKER_BASE_URL", "http://localhost:8085"),
			ApiToken:                utils.GetEnvString("TRACKER_API_TOKEN", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("TRACKER_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
		Program: Program{
			ProgramID:         utils.GetEnvString("PROGRAM_ID", ""),
			ProgramStageID:    utils.GetEnvString("PROGRAM_STAGE_ID", ""),
			TrackedEntityType: utils.GetEnvString("PROGRAM_TRACKED_ENTITY_TYPE", ""),
			TargetLocale:      utils.GetEnvString("PROGRAM_TARGET_LOCALE", "km"),
		},
		Screening: Screening{
			SaveLockTTLInSeconds:     utils.GetEnvInt("SCREENING_SAVE_LOCK_TTL_IN_SECONDS", 60),
			MappingCacheTTLInMinutes: utils.GetEnvInt("SCREENING_MAPPING_CACHE_TTL_IN_MINUTES", 1440),
			DraftTTLInHours:          utils.GetEnvInt("SCREENING_DRAFT_TTL_IN_HOURS", 24),
			ReferralQueue:            utils.GetEnvString("SCREENING_REFERRAL_QUEUE", "screening_referral_queue"),
			AuditCollection:          utils.GetEnvString("SCREENING_AUDIT_COLLECTION", "sync_audit"),
			ReferralMinimumRiskLevel: utils.GetEnvString("SCREENING_REFERRAL_MINIMUM_RISK_LEVEL", "VeryHigh"),
		},
	}
}
