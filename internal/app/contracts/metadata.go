package contracts

import (
	"context"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/tracker"
)

type MetadataUsecase interface {
	Snapshot(ctx context.Context) (*models.MappingSnapshot, error)
	Refresh(ctx context.Context) (*models.MappingSnapshot, error)
	OrgUnits(ctx context.Context) ([]tracker.OrganisationUnit, error)
}
