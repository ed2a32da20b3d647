package screenings

import (
	"context"
	"fmt"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/app/services/core/scoring"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/responses"
	trackerdto "screening-service/internal/pkg/dto/tracker"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	operationCreate = "create"
	operationUpdate = "update"

	stepValidate         = "validate"
	stepCreateEntity     = "create_entity"
	stepCreateEnrollment = "create_enrollment"
	stepCreateEvent      = "create_event"
	stepFetchEvent       = "fetch_event"
	stepDiff             = "diff"
	stepUpdateEvent      = "update_event"
)

var (
	screeningUsecaseInstance contracts.ScreeningUsecase
	onceScreeningUsecase     sync.Once
)

// referralMessage is the payload published for screenings that score at the
// referral risk level.
type referralMessage struct {
	EventID    string `json:"event_id"`
	EntityID   string `json:"entity_id"`
	OrgUnit    string `json:"org_unit"`
	ClientCode string `json:"client_code,omitempty"`
	RiskScore  int    `json:"risk_score"`
	RiskLevel  string `json:"risk_level"`
}

type screeningUsecase struct {
	TrackerClient       contracts.TrackerClient
	MetadataUsecase     contracts.MetadataUsecase
	LockerService       contracts.LockerService
	RedisRepository     contracts.RedisRepository
	SyncAuditRepository contracts.SyncAuditRepository
	ReferralPublisher   contracts.ReferralPublisher
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewScreeningUsecase(
	trackerClient contracts.TrackerClient,
	metadataUsecase contracts.MetadataUsecase,
	lockerService contracts.LockerService,
	redisRepository contracts.RedisRepository,
	syncAuditRepository contracts.SyncAuditRepository,
	referralPublisher contracts.ReferralPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScreeningUsecase {
	onceScreeningUsecase.Do(func() {
		screeningUsecaseInstance = &screeningUsecase{
			TrackerClient:       trackerClient,
			MetadataUsecase:     metadataUsecase,
			LockerService:       lockerService,
			RedisRepository:     redisRepository,
			SyncAuditRepository: syncAuditRepository,
			ReferralPublisher:   referralPublisher,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return screeningUsecaseInstance
}

// CreateScreening runs the full create protocol: entity, enrollment, event,
// strictly in that order because each payload depends on the previous step's
// reference. Any failed step aborts the rest; partially created external
// resources are accepted orphans, never rolled back.
func (uc *screeningUsecase) CreateScreening(ctx context.Context, request *requests.CreateScreening) (*responses.CreateScreening, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.CreateScreening called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrgUnitKey, request.OrgUnit),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	record := models.NewScreeningRecord()
	record.OrgUnit = request.OrgUnit
	record.Merge(request.Fields)

	problems := ValidateRecord(record)
	if len(problems) > 0 {
		uc.Log.Error("screeningUsecase.CreateScreening validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings("problems", problems),
		)
		return nil, exceptions.ErrScreeningValidation(problems)
	}

	snapshot, err := uc.MetadataUsecase.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.Empty() {
		uc.Log.Error("screeningUsecase.CreateScreening mapping snapshot empty",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSchemaUnavailable()
	}

	clientCode := record.Get(constvars.FieldClientCode)
	if clientCode == "" {
		clientCode = utils.GenerateClientCode(
			record.Get(constvars.FieldFamilyName),
			record.Get(constvars.FieldLastName),
			record.Get(constvars.FieldSex),
			record.Get(constvars.FieldDateOfBirth),
		)
		record.Merge(map[string]string{constvars.FieldClientCode: clientCode})
	}

	risk := scoring.Score(record)
	eventDate := record.Get(constvars.FieldScreeningDate)
	if eventDate == "" {
		eventDate = time.Now().Format(constvars.TrackerDateLayout)
	}
	record.Merge(map[string]string{
		constvars.FieldScreeningDate:       eventDate,
		constvars.FieldRiskScore:           strconv.Itoa(risk.Score),
		constvars.FieldRiskLevel:           risk.Level,
		constvars.FieldRiskRecommendations: strings.Join(risk.Recommendations, "; "),
	})

	lockKey := fmt.Sprintf(constvars.SaveLockKeyFormat, clientCode)
	lockTTL := time.Duration(uc.InternalConfig.Screening.SaveLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSaveInProgress()
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Error("screeningUsecase.CreateScreening error releasing save lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	uc.saveDraft(ctx, clientCode, record)

	audit := &models.SyncAuditEntry{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Operation: operationCreate,
		OrgUnit:   record.OrgUnit,
		RiskScore: risk.Score,
		RiskLevel: risk.Level,
		CreatedAt: time.Now(),
	}

	entity := &trackerdto.TrackedEntity{
		TrackedEntityType: uc.InternalConfig.Program.TrackedEntityType,
		OrgUnit:           record.OrgUnit,
		Attributes:        buildAttributePayload(snapshot, record),
	}
	entityID, err := uc.TrackerClient.CreateTrackedEntity(ctx, entity)
	if err != nil {
		uc.failAudit(ctx, audit, stepCreateEntity, err)
		return nil, err
	}
	record.ExternalEntityID = entityID
	audit.EntityID = entityID

	enrollment := &trackerdto.Enrollment{
		TrackedEntityInstance: entityID,
		Program:               uc.InternalConfig.Program.ProgramID,
		OrgUnit:               record.OrgUnit,
		EnrollmentDate:        eventDate,
		IncidentDate:          eventDate,
	}
	enrollmentID, err := uc.TrackerClient.CreateEnrollment(ctx, enrollment)
	if err != nil {
		uc.failAudit(ctx, audit, stepCreateEnrollment, err)
		return nil, err
	}
	record.ExternalEnrollmentID = enrollmentID
	audit.EnrollmentID = enrollmentID

	event := &trackerdto.Event{
		Program:               uc.InternalConfig.Program.ProgramID,
		ProgramStage:          uc.InternalConfig.Program.ProgramStageID,
		OrgUnit:               record.OrgUnit,
		EventDate:             eventDate,
		Status:                constvars.TrackerEventStatusActive,
		TrackedEntityInstance: entityID,
		Enrollment:            enrollmentID,
		DataValues:            buildDataValues(snapshot, record),
	}
	eventID, err := uc.TrackerClient.CreateEvent(ctx, event)
	if err != nil {
		uc.failAudit(ctx, audit, stepCreateEvent, err)
		return nil, err
	}
	record.ExternalRecordID = eventID

	audit.Outcome = models.SyncOutcomeCreated
	audit.StepReached = stepCreateEvent
	audit.EventID = eventID
	uc.writeAudit(ctx, audit)

	uc.publishReferral(ctx, &referralMessage{
		EventID:    eventID,
		EntityID:   entityID,
		OrgUnit:    record.OrgUnit,
		ClientCode: clientCode,
		RiskScore:  risk.Score,
		RiskLevel:  risk.Level,
	})
	uc.deleteDraft(ctx, clientCode)

	uc.Log.Info("screeningUsecase.CreateScreening succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, entityID),
		zap.String(constvars.LoggingEventIDKey, eventID),
		zap.String(constvars.LoggingRiskLevelKey, risk.Level),
	)
	return &responses.CreateScreening{
		Outcome:      models.SyncOutcomeCreated,
		EntityID:     entityID,
		EnrollmentID: enrollmentID,
		EventID:      eventID,
		ClientCode:   clientCode,
		Risk:         risk,
	}, nil
}

// UpdateScreening re-fetches the authoritative event, writes only the diff,
// and interprets the platform's counters. The entity-attribute update at the
// end is a non-critical step: logged, never propagated.
func (uc *screeningUsecase) UpdateScreening(ctx context.Context, request *requests.UpdateScreening) (*responses.UpdateScreening, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.UpdateScreening called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, request.EventID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	lockKey := fmt.Sprintf(constvars.SaveLockKeyFormat, request.EventID)
	lockTTL := time.Duration(uc.InternalConfig.Screening.SaveLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSaveInProgress()
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Error("screeningUsecase.UpdateScreening error releasing save lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	snapshot, err := uc.MetadataUsecase.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.Empty() {
		return nil, exceptions.ErrSchemaUnavailable()
	}

	audit := &models.SyncAuditEntry{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Operation: operationUpdate,
		EventID:   request.EventID,
		CreatedAt: time.Now(),
	}

	currentEvent, err := uc.TrackerClient.GetEvent(ctx, request.EventID)
	if err != nil {
		uc.failAudit(ctx, audit, stepFetchEvent, err)
		return nil, err
	}
	audit.OrgUnit = currentEvent.OrgUnit

	record := recordFromEvent(snapshot, currentEvent)
	record.Merge(request.Fields)

	problems := ValidateAnswers(record)
	if len(problems) > 0 {
		uc.Log.Error("screeningUsecase.UpdateScreening validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings("problems", problems),
		)
		return nil, exceptions.ErrScreeningValidation(problems)
	}

	risk := scoring.Score(record)
	record.Merge(map[string]string{
		constvars.FieldRiskScore:           strconv.Itoa(risk.Score),
		constvars.FieldRiskLevel:           risk.Level,
		constvars.FieldRiskRecommendations: strings.Join(risk.Recommendations, "; "),
	})
	audit.RiskScore = risk.Score
	audit.RiskLevel = risk.Level

	diff := BuildSyncDiff(snapshot.DataElements, record, currentEvent)
	if len(diff) == 0 {
		audit.Outcome = models.SyncOutcomeNoChanges
		audit.StepReached = stepDiff
		uc.writeAudit(ctx, audit)

		uc.Log.Info("screeningUsecase.UpdateScreening no changes to save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, request.EventID),
		)
		return &responses.UpdateScreening{
			Outcome: models.SyncOutcomeNoChanges,
			EventID: request.EventID,
			Message: constvars.NoChangesScreeningMessage,
		}, nil
	}

	// Program, stage, org unit and date come from the fetched event, never
	// from client state.
	eventPayload := &trackerdto.Event{
		Event:                 currentEvent.Event,
		Program:               currentEvent.Program,
		ProgramStage:          currentEvent.ProgramStage,
		OrgUnit:               currentEvent.OrgUnit,
		EventDate:             currentEvent.EventDate,
		Status:                constvars.TrackerEventStatusCompleted,
		TrackedEntityInstance: currentEvent.TrackedEntityInstance,
		Enrollment:            currentEvent.Enrollment,
		DataValues:            diffToDataValues(diff),
	}
	updated, ignored, err := uc.TrackerClient.UpdateEvent(ctx, request.EventID, eventPayload)
	if err != nil {
		uc.failAudit(ctx, audit, stepUpdateEvent, err)
		return nil, err
	}
	audit.UpdatedCount = updated
	audit.IgnoredCount = ignored

	uc.updateEntityAttributesBestEffort(ctx, snapshot, record, currentEvent.TrackedEntityInstance)

	response := &responses.UpdateScreening{
		EventID:      request.EventID,
		UpdatedCount: updated,
		IgnoredCount: ignored,
		DiffSize:     len(diff),
	}
	// Nothing applied is a failure even when the platform merely ignored the
	// values instead of erroring.
	switch {
	case updated > 0 && ignored > 0:
		response.Outcome = models.SyncOutcomePartial
		response.Message = constvars.PartialScreeningUpdateMessage
	case updated > 0:
		response.Outcome = models.SyncOutcomeUpdated
		response.Message = constvars.UpdateScreeningSuccessMessage
	default:
		response.Outcome = models.SyncOutcomeFailed
		response.Message = constvars.UpdateAppliedNothingMessage
	}
	audit.Outcome = response.Outcome
	audit.StepReached = stepUpdateEvent
	uc.writeAudit(ctx, audit)

	uc.Log.Info("screeningUsecase.UpdateScreening finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, request.EventID),
		zap.String("outcome", response.Outcome),
		zap.Int(constvars.LoggingDiffSizeKey, len(diff)),
	)
	return response, nil
}

func (uc *screeningUsecase) GetScreening(ctx context.Context, eventID string) (*responses.ScreeningRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.GetScreening called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, eventID),
	)

	snapshot, err := uc.MetadataUsecase.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.Empty() {
		return nil, exceptions.ErrSchemaUnavailable()
	}

	event, err := uc.TrackerClient.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	record := recordFromEvent(snapshot, event)
	return &responses.ScreeningRecord{
		Record: record,
		Risk:   scoring.Score(record),
	}, nil
}

func (uc *screeningUsecase) PreviewScore(ctx context.Context, request *requests.ScorePreview) (*responses.ScorePreview, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	record := models.NewScreeningRecord()
	record.Merge(request.Fields)

	problems := ValidateAnswers(record)
	if len(problems) > 0 {
		return nil, exceptions.ErrScreeningValidation(problems)
	}

	return &responses.ScorePreview{Risk: scoring.Score(record)}, nil
}

func (uc *screeningUsecase) PreviewClientCode(ctx context.Context, request *requests.ClientCodePreview) (*responses.ClientCodePreview, error) {
	code := utils.GenerateClientCode(request.FamilyName, request.LastName, request.Sex, request.DateOfBirth)
	return &responses.ClientCodePreview{ClientCode: code}, nil
}

// updateEntityAttributesBestEffort pushes the identity attributes back onto
// the entity. Failures here never abort the update flow.
func (uc *screeningUsecase) updateEntityAttributesBestEffort(ctx context.Context, snapshot *models.MappingSnapshot, record *models.ScreeningRecord, entityID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if entityID == "" {
		return
	}

	attributes := buildAttributePayload(snapshot, record)
	if len(attributes) == 0 {
		return
	}

	entity := &trackerdto.TrackedEntity{
		OrgUnit:    record.OrgUnit,
		Attributes: attributes,
	}
	err := uc.TrackerClient.UpdateEntityAttributes(ctx, entityID, entity)
	if err != nil {
		uc.Log.Error("screeningUsecase.updateEntityAttributesBestEffort error updating entity attributes, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, entityID),
			zap.Error(err),
		)
	}
}

func (uc *screeningUsecase) saveDraft(ctx context.Context, clientCode string, record *models.ScreeningRecord) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	draftKey := fmt.Sprintf(constvars.DraftKeyFormat, clientCode)
	draftTTL := time.Duration(uc.InternalConfig.Screening.DraftTTLInHours) * time.Hour
	err := uc.RedisRepository.Set(ctx, draftKey, record, draftTTL)
	if err != nil {
		uc.Log.Error("screeningUsecase.saveDraft error storing draft, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, draftKey),
			zap.Error(err),
		)
	}
}

func (uc *screeningUsecase) deleteDraft(ctx context.Context, clientCode string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	draftKey := fmt.Sprintf(constvars.DraftKeyFormat, clientCode)
	err := uc.RedisRepository.Delete(ctx, draftKey)
	if err != nil {
		uc.Log.Error("screeningUsecase.deleteDraft error removing draft, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, draftKey),
			zap.Error(err),
		)
	}
}

func (uc *screeningUsecase) publishReferral(ctx context.Context, message *referralMessage) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if message.RiskLevel != uc.InternalConfig.Screening.ReferralMinimumRiskLevel {
		return
	}

	err := uc.ReferralPublisher.PublishReferral(ctx, uc.InternalConfig.Screening.ReferralQueue, message)
	if err != nil {
		uc.Log.Error("screeningUsecase.publishReferral error publishing referral, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, message.EventID),
			zap.Error(err),
		)
	}
}

func (uc *screeningUsecase) failAudit(ctx context.Context, audit *models.SyncAuditEntry, step string, cause error) {
	audit.Outcome = models.SyncOutcomeFailed
	audit.StepReached = step
	audit.ErrorDetail = cause.Error()
	if customErr, ok := cause.(*exceptions.CustomError); ok {
		audit.Conflicts = customErr.Conflicts
	}
	uc.writeAudit(ctx, audit)
}

func (uc *screeningUsecase) writeAudit(ctx context.Context, audit *models.SyncAuditEntry) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.SyncAuditRepository.Insert(ctx, audit)
	if err != nil {
		uc.Log.Error("screeningUsecase.writeAudit error inserting audit entry, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
