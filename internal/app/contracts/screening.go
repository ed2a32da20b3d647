package contracts

import (
	"context"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/responses"
)

type ScreeningUsecase interface {
	CreateScreening(ctx context.Context, request *requests.CreateScreening) (*responses.CreateScreening, error)
	UpdateScreening(ctx context.Context, request *requests.UpdateScreening) (*responses.UpdateScreening, error)
	GetScreening(ctx context.Context, eventID string) (*responses.ScreeningRecord, error)
	PreviewScore(ctx context.Context, request *requests.ScorePreview) (*responses.ScorePreview, error)
	PreviewClientCode(ctx context.Context, request *requests.ClientCodePreview) (*responses.ClientCodePreview, error)
}

type SyncAuditRepository interface {
	Insert(ctx context.Context, entry *models.SyncAuditEntry) error
	FindByEventID(ctx context.Context, eventID string) ([]models.SyncAuditEntry, error)
}

type ReferralPublisher interface {
	PublishReferral(ctx context.Context, queueName string, payload interface{}) error
}
