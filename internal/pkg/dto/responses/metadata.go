package responses

import (
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/tracker"
	"time"
)

type Mappings struct {
	DataElements map[string]models.FieldMapping `json:"data_elements"`
	Attributes   map[string]models.FieldMapping `json:"attributes"`
	Labels       map[string]string              `json:"labels"`
	ResolvedAt   time.Time                      `json:"resolved_at"`
}

type OrgUnits struct {
	OrganisationUnits []tracker.OrganisationUnit `json:"organisation_units"`
}
