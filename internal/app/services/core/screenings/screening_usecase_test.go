package screenings

import (
	"context"
	"testing"
	"time"

	"screening-service/internal/app/config"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/tracker"
	"screening-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockTrackerClient struct{ mock.Mock }

func (m *mockTrackerClient) GetStageDataElements(ctx context.Context, programStageID string) ([]tracker.ProgramStageDataElement, error) {
	args := m.Called(ctx, programStageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.ProgramStageDataElement), args.Error(1)
}

func (m *mockTrackerClient) GetEntityAttributes(ctx context.Context, programID string) ([]tracker.ProgramTrackedEntityAttribute, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.ProgramTrackedEntityAttribute), args.Error(1)
}

func (m *mockTrackerClient) GetOrganisationUnits(ctx context.Context) ([]tracker.OrganisationUnit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.OrganisationUnit), args.Error(1)
}

func (m *mockTrackerClient) GetEvent(ctx context.Context, eventID string) (*tracker.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracker.Event), args.Error(1)
}

func (m *mockTrackerClient) CreateTrackedEntity(ctx context.Context, request *tracker.TrackedEntity) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *mockTrackerClient) CreateEnrollment(ctx context.Context, request *tracker.Enrollment) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *mockTrackerClient) CreateEvent(ctx context.Context, request *tracker.Event) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *mockTrackerClient) UpdateEvent(ctx context.Context, eventID string, request *tracker.Event) (int, int, error) {
	args := m.Called(ctx, eventID, request)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *mockTrackerClient) UpdateEntityAttributes(ctx context.Context, entityID string, request *tracker.TrackedEntity) error {
	args := m.Called(ctx, entityID, request)
	return args.Error(0)
}

type mockMetadataUsecase struct{ mock.Mock }

func (m *mockMetadataUsecase) Snapshot(ctx context.Context) (*models.MappingSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MappingSnapshot), args.Error(1)
}

func (m *mockMetadataUsecase) Refresh(ctx context.Context) (*models.MappingSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MappingSnapshot), args.Error(1)
}

func (m *mockMetadataUsecase) OrgUnits(ctx context.Context) ([]tracker.OrganisationUnit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracker.OrganisationUnit), args.Error(1)
}

type mockLockerService struct{ mock.Mock }

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type mockRedisRepository struct{ mock.Mock }

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type mockSyncAuditRepository struct{ mock.Mock }

func (m *mockSyncAuditRepository) Insert(ctx context.Context, entry *models.SyncAuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockSyncAuditRepository) FindByEventID(ctx context.Context, eventID string) ([]models.SyncAuditEntry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SyncAuditEntry), args.Error(1)
}

type mockReferralPublisher struct{ mock.Mock }

func (m *mockReferralPublisher) PublishReferral(ctx context.Context, queueName string, payload interface{}) error {
	args := m.Called(ctx, queueName, payload)
	return args.Error(0)
}

type usecaseMocks struct {
	trackerClient *mockTrackerClient
	metadata      *mockMetadataUsecase
	locker        *mockLockerService
	redis         *mockRedisRepository
	audit         *mockSyncAuditRepository
	referral      *mockReferralPublisher
}

func newTestUsecase() (*screeningUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		trackerClient: new(mockTrackerClient),
		metadata:      new(mockMetadataUsecase),
		locker:        new(mockLockerService),
		redis:         new(mockRedisRepository),
		audit:         new(mockSyncAuditRepository),
		referral:      new(mockReferralPublisher),
	}
	internalConfig := &config.InternalConfig{
		Program: config.Program{
			ProgramID:         "PR001",
			ProgramStageID:    "PS001",
			TrackedEntityType: "TET001",
			TargetLocale:      "km",
		},
		Screening: config.Screening{
			SaveLockTTLInSeconds:     60,
			MappingCacheTTLInMinutes: 60,
			DraftTTLInHours:          24,
			ReferralQueue:            "screening_referral_queue",
			AuditCollection:          "sync_audit",
			ReferralMinimumRiskLevel: "VeryHigh",
		},
	}
	usecase := &screeningUsecase{
		TrackerClient:       mocks.trackerClient,
		MetadataUsecase:     mocks.metadata,
		LockerService:       mocks.locker,
		RedisRepository:     mocks.redis,
		SyncAuditRepository: mocks.audit,
		ReferralPublisher:   mocks.referral,
		InternalConfig:      internalConfig,
		Log:                 zap.NewNop(),
	}
	return usecase, mocks
}

func testSnapshot() *models.MappingSnapshot {
	return &models.MappingSnapshot{
		Attributes: map[string]models.FieldMapping{
			constvars.FieldFamilyName:  {InternalKey: constvars.FieldFamilyName, ExternalID: "at001", ValueType: constvars.TrackerValueTypeText},
			constvars.FieldLastName:    {InternalKey: constvars.FieldLastName, ExternalID: "at002", ValueType: constvars.TrackerValueTypeText},
			constvars.FieldSex:         {InternalKey: constvars.FieldSex, ExternalID: "at003", ValueType: constvars.TrackerValueTypeText},
			constvars.FieldDateOfBirth: {InternalKey: constvars.FieldDateOfBirth, ExternalID: "at004", ValueType: constvars.TrackerValueTypeDate},
			constvars.FieldClientCode:  {InternalKey: constvars.FieldClientCode, ExternalID: "at005", ValueType: constvars.TrackerValueTypeText},
			constvars.FieldProvince:    {InternalKey: constvars.FieldProvince, ExternalID: "at006", ValueType: constvars.TrackerValueTypeText},
			constvars.FieldDistrict:    {InternalKey: constvars.FieldDistrict, ExternalID: "at007", ValueType: constvars.TrackerValueTypeText},
		},
		DataElements: map[string]models.FieldMapping{
			constvars.FieldSTISymptoms:       {InternalKey: constvars.FieldSTISymptoms, ExternalID: "de001", ValueType: constvars.TrackerValueTypeTrueOnly},
			constvars.FieldSexWithHIVPartner: {InternalKey: constvars.FieldSexWithHIVPartner, ExternalID: "de002", ValueType: constvars.TrackerValueTypeTrueOnly},
			constvars.FieldInjectedDrugs:     {InternalKey: constvars.FieldInjectedDrugs, ExternalID: "de003", ValueType: constvars.TrackerValueTypeTrueOnly},
			constvars.FieldAdditionalInfo:    {InternalKey: constvars.FieldAdditionalInfo, ExternalID: "de004", ValueType: constvars.TrackerValueTypeText},
			constvars.FieldRiskScore:         {InternalKey: constvars.FieldRiskScore, ExternalID: "de005", ValueType: constvars.TrackerValueTypeNumber},
			constvars.FieldRiskLevel:         {InternalKey: constvars.FieldRiskLevel, ExternalID: "de006", ValueType: constvars.TrackerValueTypeText},
		},
		Labels: map[string]string{},
	}
}

func createRequest() *requests.CreateScreening {
	return &requests.CreateScreening{
		OrgUnit: "OU001",
		Fields: map[string]string{
			constvars.FieldFamilyName:  "Dara",
			constvars.FieldLastName:    "Sok",
			constvars.FieldSex:         constvars.SexMale,
			constvars.FieldDateOfBirth: "1995-03-07",
			constvars.FieldProvince:    "PP",
			constvars.FieldDistrict:    "PP01",
		},
	}
}

func TestCreateScreening(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path creates entity, enrollment and event in order", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		mocks.metadata.On("Snapshot", mock.Anything).Return(testSnapshot(), nil)
		mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		mocks.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.redis.On("Delete", mock.Anything, mock.Anything).Return(nil)
		mocks.trackerClient.On("CreateTrackedEntity", mock.Anything, mock.Anything).Return("TEI001", nil)
		mocks.trackerClient.On("CreateEnrollment", mock.Anything, mock.MatchedBy(func(enrollment *tracker.Enrollment) bool {
			return enrollment.TrackedEntityInstance == "TEI001" && enrollment.Program == "PR001"
		})).Return("ENR001", nil)
		mocks.trackerClient.On("CreateEvent", mock.Anything, mock.MatchedBy(func(event *tracker.Event) bool {
			return event.TrackedEntityInstance == "TEI001" && event.Enrollment == "ENR001" &&
				event.Program == "PR001" && event.ProgramStage == "PS001"
		})).Return("EV001", nil)
		mocks.audit.On("Insert", mock.Anything, mock.Anything).Return(nil)

		response, err := usecase.CreateScreening(ctx, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, models.SyncOutcomeCreated, response.Outcome)
		assert.Equal(t, "TEI001", response.EntityID)
		assert.Equal(t, "ENR001", response.EnrollmentID)
		assert.Equal(t, "EV001", response.EventID)
		assert.NotEmpty(t, response.ClientCode)
		mocks.trackerClient.AssertExpectations(t)
		mocks.referral.AssertNotCalled(t, "PublishReferral", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Validation failure aborts before any network call", func(t *testing.T) {
		usecase, mocks := newTestUsecase()

		request := createRequest()
		delete(request.Fields, constvars.FieldFamilyName)

		_, err := usecase.CreateScreening(ctx, request)

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		mocks.trackerClient.AssertNotCalled(t, "CreateTrackedEntity", mock.Anything, mock.Anything)
		mocks.metadata.AssertNotCalled(t, "Snapshot", mock.Anything)
	})

	t.Run("Empty mapping snapshot aborts with schema unavailable", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		mocks.metadata.On("Snapshot", mock.Anything).Return(&models.MappingSnapshot{}, nil)

		_, err := usecase.CreateScreening(ctx, createRequest())

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
		mocks.trackerClient.AssertNotCalled(t, "CreateTrackedEntity", mock.Anything, mock.Anything)
	})

	t.Run("A save already in flight is rejected", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		mocks.metadata.On("Snapshot", mock.Anything).Return(testSnapshot(), nil)
		mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := usecase.CreateScreening(ctx, createRequest())

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		mocks.trackerClient.AssertNotCalled(t, "CreateTrackedEntity", mock.Anything, mock.Anything)
	})

	t.Run("Entity creation failure aborts the remaining steps", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		mocks.metadata.On("Snapshot", mock.Anything).Return(testSnapshot(), nil)
		mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		mocks.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.audit.On("Insert", mock.Anything, mock.MatchedBy(func(entry *models.SyncAuditEntry) bool {
			return entry.Outcome == models.SyncOutcomeFailed && entry.StepReached == stepCreateEntity
		})).Return(nil)
		mocks.trackerClient.On("CreateTrackedEntity", mock.Anything, mock.Anything).
			Return("", exceptions.ErrTrackerNoReference(constvars.TrackerResourceTrackedEntity, "value_required_but_not_provided"))

		_, err := usecase.CreateScreening(ctx, createRequest())

		assert.Error(t, err)
		mocks.trackerClient.AssertNotCalled(t, "CreateEnrollment", mock.Anything, mock.Anything)
		mocks.trackerClient.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
		mocks.audit.AssertExpectations(t)
	})

	t.Run("A very high risk screening publishes a referral", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		mocks.metadata.On("Snapshot", mock.Anything).Return(testSnapshot(), nil)
		mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		mocks.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.redis.On("Delete", mock.Anything, mock.Anything).Return(nil)
		mocks.trackerClient.On("CreateTrackedEntity", mock.Anything, mock.Anything).Return("TEI001", nil)
		mocks.trackerClient.On("CreateEnrollment", mock.Anything, mock.Anything).Return("ENR001", nil)
		mocks.trackerClient.On("CreateEvent", mock.Anything, mock.Anything).Return("EV001", nil)
		mocks.audit.On("Insert", mock.Anything, mock.Anything).Return(nil)
		mocks.referral.On("PublishReferral", mock.Anything, "screening_referral_queue", mock.Anything).Return(nil)

		request := createRequest()
		request.Fields[constvars.FieldSexWithHIVPartner] = constvars.AnswerYes
		request.Fields[constvars.FieldInjectedDrugs] = constvars.AnswerYes

		response, err := usecase.CreateScreening(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "VeryHigh", response.Risk.Level)
		mocks.referral.AssertExpectations(t)
	})
}

func currentEvent() *tracker.Event {
	return &tracker.Event{
		Event:                 "EV001",
		Program:               "PR001",
		ProgramStage:          "PS001",
		OrgUnit:               "OU001",
		EventDate:             "2026-08-20",
		Status:                constvars.TrackerEventStatusActive,
		TrackedEntityInstance: "TEI001",
		Enrollment:            "ENR001",
		DataValues: []tracker.DataValue{
			{DataElement: "de001", Value: "true"},
			{DataElement: "de004", Value: "first visit"},
			{DataElement: "de005", Value: "15"},
			{DataElement: "de006", Value: "Low"},
		},
	}
}

func TestUpdateScreening(t *testing.T) {
	ctx := context.Background()

	updateMocksBase := func(mocks *usecaseMocks) {
		mocks.metadata.On("Snapshot", mock.Anything).Return(testSnapshot(), nil)
		mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		mocks.audit.On("Insert", mock.Anything, mock.Anything).Return(nil)
	}

	t.Run("Empty diff reports no changes and never writes", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		updateMocksBase(mocks)
		mocks.trackerClient.On("GetEvent", mock.Anything, "EV001").Return(currentEvent(), nil)

		// Same values the event already holds, plus the risk fields the
		// merge recomputes to their current equivalents.
		response, err := usecase.UpdateScreening(ctx, &requests.UpdateScreening{
			EventID: "EV001",
			Fields: map[string]string{
				constvars.FieldSTISymptoms:    constvars.AnswerYes,
				constvars.FieldAdditionalInfo: "first visit",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.SyncOutcomeNoChanges, response.Outcome)
		mocks.trackerClient.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything, mock.Anything)
		mocks.trackerClient.AssertNotCalled(t, "UpdateEntityAttributes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Diffed update copies event envelope from the fetched event and forces COMPLETED", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		updateMocksBase(mocks)
		mocks.trackerClient.On("GetEvent", mock.Anything, "EV001").Return(currentEvent(), nil)
		mocks.trackerClient.On("UpdateEvent", mock.Anything, "EV001", mock.MatchedBy(func(event *tracker.Event) bool {
			return event.Status == constvars.TrackerEventStatusCompleted &&
				event.Program == "PR001" && event.ProgramStage == "PS001" &&
				event.OrgUnit == "OU001" && event.EventDate == "2026-08-20"
		})).Return(2, 0, nil)
		mocks.trackerClient.On("UpdateEntityAttributes", mock.Anything, "TEI001", mock.Anything).Return(nil)

		response, err := usecase.UpdateScreening(ctx, &requests.UpdateScreening{
			EventID: "EV001",
			Fields:  map[string]string{constvars.FieldAdditionalInfo: "second visit"},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.SyncOutcomeUpdated, response.Outcome)
		assert.Equal(t, 2, response.UpdatedCount)
		mocks.trackerClient.AssertExpectations(t)
	})

	t.Run("Ignored values make the outcome partial", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		updateMocksBase(mocks)
		mocks.trackerClient.On("GetEvent", mock.Anything, "EV001").Return(currentEvent(), nil)
		mocks.trackerClient.On("UpdateEvent", mock.Anything, "EV001", mock.Anything).Return(1, 2, nil)
		mocks.trackerClient.On("UpdateEntityAttributes", mock.Anything, "TEI001", mock.Anything).Return(nil)

		response, err := usecase.UpdateScreening(ctx, &requests.UpdateScreening{
			EventID: "EV001",
			Fields:  map[string]string{constvars.FieldAdditionalInfo: "second visit"},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.SyncOutcomePartial, response.Outcome)
		assert.Equal(t, constvars.PartialScreeningUpdateMessage, response.Message)
	})

	t.Run("Everything ignored and nothing updated is a failed outcome, not partial", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		updateMocksBase(mocks)
		mocks.trackerClient.On("GetEvent", mock.Anything, "EV001").Return(currentEvent(), nil)
		mocks.trackerClient.On("UpdateEvent", mock.Anything, "EV001", mock.Anything).Return(0, 3, nil)
		mocks.trackerClient.On("UpdateEntityAttributes", mock.Anything, "TEI001", mock.Anything).Return(nil)

		response, err := usecase.UpdateScreening(ctx, &requests.UpdateScreening{
			EventID: "EV001",
			Fields:  map[string]string{constvars.FieldAdditionalInfo: "second visit"},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.SyncOutcomeFailed, response.Outcome)
		assert.Equal(t, constvars.UpdateAppliedNothingMessage, response.Message)
	})

	t.Run("Zero counters on a nonempty diff is a failed outcome", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		updateMocksBase(mocks)
		mocks.trackerClient.On("GetEvent", mock.Anything, "EV001").Return(currentEvent(), nil)
		mocks.trackerClient.On("UpdateEvent", mock.Anything, "EV001", mock.Anything).Return(0, 0, nil)
		mocks.trackerClient.On("UpdateEntityAttributes", mock.Anything, "TEI001", mock.Anything).Return(nil)

		response, err := usecase.UpdateScreening(ctx, &requests.UpdateScreening{
			EventID: "EV001",
			Fields:  map[string]string{constvars.FieldAdditionalInfo: "second visit"},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.SyncOutcomeFailed, response.Outcome)
		assert.Equal(t, constvars.UpdateAppliedNothingMessage, response.Message)
	})

	t.Run("Entity attribute failure is swallowed", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		updateMocksBase(mocks)
		mocks.trackerClient.On("GetEvent", mock.Anything, "EV001").Return(currentEvent(), nil)
		mocks.trackerClient.On("UpdateEvent", mock.Anything, "EV001", mock.Anything).Return(1, 0, nil)
		mocks.trackerClient.On("UpdateEntityAttributes", mock.Anything, "TEI001", mock.Anything).
			Return(exceptions.ErrTrackerUpdateResource(assert.AnError, constvars.TrackerResourceTrackedEntity))

		response, err := usecase.UpdateScreening(ctx, &requests.UpdateScreening{
			EventID: "EV001",
			Fields:  map[string]string{constvars.FieldAdditionalInfo: "second visit"},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.SyncOutcomeUpdated, response.Outcome)
	})

	t.Run("Conflict from the platform surfaces the concurrency message", func(t *testing.T) {
		usecase, mocks := newTestUsecase()
		updateMocksBase(mocks)
		mocks.trackerClient.On("GetEvent", mock.Anything, "EV001").Return(currentEvent(), nil)
		mocks.trackerClient.On("UpdateEvent", mock.Anything, "EV001", mock.Anything).
			Return(0, 0, exceptions.ErrTrackerConflict(constvars.TrackerResourceEvent))

		_, err := usecase.UpdateScreening(ctx, &requests.UpdateScreening{
			EventID: "EV001",
			Fields:  map[string]string{constvars.FieldAdditionalInfo: "second visit"},
		})

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientRecordModified, customErr.ClientMessage)
	})
}

func TestPreviewClientCode(t *testing.T) {
	usecase, _ := newTestUsecase()

	t.Run("Complete identity yields the deterministic code", func(t *testing.T) {
		response, err := usecase.PreviewClientCode(context.Background(), &requests.ClientCodePreview{
			FamilyName:  "Dara",
			LastName:    "Sok",
			Sex:         constvars.SexMale,
			DateOfBirth: "1995-03-07",
		})

		assert.NoError(t, err)
		assert.Equal(t, "SkDr1030795", response.ClientCode)
	})

	t.Run("Missing inputs yield an empty code", func(t *testing.T) {
		response, err := usecase.PreviewClientCode(context.Background(), &requests.ClientCodePreview{
			FamilyName: "Dara",
		})

		assert.NoError(t, err)
		assert.Empty(t, response.ClientCode)
	})
}
