package metadata

import (
	"context"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	trackerdto "screening-service/internal/pkg/dto/tracker"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	metadataUsecaseInstance contracts.MetadataUsecase
	onceMetadataUsecase     sync.Once
)

type metadataUsecase struct {
	TrackerClient   contracts.TrackerClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger

	mu       sync.RWMutex
	snapshot *models.MappingSnapshot
}

func NewMetadataUsecase(
	trackerClient contracts.TrackerClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MetadataUsecase {
	onceMetadataUsecase.Do(func() {
		metadataUsecaseInstance = &metadataUsecase{
			TrackerClient:   trackerClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return metadataUsecaseInstance
}

// Snapshot returns the mapping snapshot the process is currently working
// with. Resolution order: in-memory, then the redis cache, then a full
// refresh against the platform. An in-flight save keeps the pointer it
// received even if a refresh swaps the snapshot underneath.
func (uc *metadataUsecase) Snapshot(ctx context.Context) (*models.MappingSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.mu.RLock()
	cached := uc.snapshot
	uc.mu.RUnlock()
	if !cached.Empty() {
		return cached, nil
	}

	snapshotRedisData, err := uc.RedisRepository.Get(ctx, constvars.MappingSnapshotRedisKey)
	if err != nil {
		uc.Log.Error("metadataUsecase.Snapshot error retrieving snapshot from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if snapshotRedisData != "" {
		restored := new(models.MappingSnapshot)
		err = json.Unmarshal([]byte(snapshotRedisData), restored)
		if err == nil && !restored.Empty() {
			uc.mu.Lock()
			uc.snapshot = restored
			uc.mu.Unlock()
			uc.Log.Info("metadataUsecase.Snapshot restored snapshot from redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingMappingCountKey, len(restored.DataElements)+len(restored.Attributes)),
			)
			return restored, nil
		}
		if err != nil {
			uc.Log.Error("metadataUsecase.Snapshot error unmarshaling cached snapshot, refetching",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	return uc.Refresh(ctx)
}

// Refresh refetches both schema sources and swaps in a freshly resolved
// snapshot.
func (uc *metadataUsecase) Refresh(ctx context.Context) (*models.MappingSnapshot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("metadataUsecase.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	stageFields, err := uc.TrackerClient.GetStageDataElements(ctx, uc.InternalConfig.Program.ProgramStageID)
	if err != nil {
		uc.Log.Error("metadataUsecase.Refresh error fetching stage data elements",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entityAttributes, err := uc.TrackerClient.GetEntityAttributes(ctx, uc.InternalConfig.Program.ProgramID)
	if err != nil {
		uc.Log.Error("metadataUsecase.Refresh error fetching entity attributes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	snapshot := ResolveMappings(stageFields, entityAttributes, uc.InternalConfig.Program.TargetLocale)

	uc.mu.Lock()
	uc.snapshot = snapshot
	uc.mu.Unlock()

	cacheTTL := time.Duration(uc.InternalConfig.Screening.MappingCacheTTLInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.MappingSnapshotRedisKey, snapshot, cacheTTL)
	if err != nil {
		uc.Log.Error("metadataUsecase.Refresh error caching snapshot to redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("metadataUsecase.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMappingCountKey, len(snapshot.DataElements)+len(snapshot.Attributes)),
	)
	return snapshot, nil
}

func (uc *metadataUsecase) OrgUnits(ctx context.Context) ([]trackerdto.OrganisationUnit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("metadataUsecase.OrgUnits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	orgUnits, err := uc.TrackerClient.GetOrganisationUnits(ctx)
	if err != nil {
		uc.Log.Error("metadataUsecase.OrgUnits error fetching organisation units",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return orgUnits, nil
}
