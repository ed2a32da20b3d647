package contracts

import (
	"context"
	"screening-service/internal/pkg/dto/tracker"
)

type TrackerClient interface {
	GetStageDataElements(ctx context.Context, programStageID string) ([]tracker.ProgramStageDataElement, error)
	GetEntityAttributes(ctx context.Context, programID string) ([]tracker.ProgramTrackedEntityAttribute, error)
	GetOrganisationUnits(ctx context.Context) ([]tracker.OrganisationUnit, error)
	GetEvent(ctx context.Context, eventID string) (*tracker.Event, error)
	CreateTrackedEntity(ctx context.Context, request *tracker.TrackedEntity) (string, error)
	CreateEnrollment(ctx context.Context, request *tracker.Enrollment) (string, error)
	CreateEvent(ctx context.Context, request *tracker.Event) (string, error)
	UpdateEvent(ctx context.Context, eventID string, request *tracker.Event) (updated int, ignored int, err error)
	UpdateEntityAttributes(ctx context.Context, entityID string, request *tracker.TrackedEntity) error
}
