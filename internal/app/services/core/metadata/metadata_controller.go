package metadata

import (
	"context"
	"net/http"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/responses"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type MetadataController struct {
	Log             *zap.Logger
	MetadataUsecase contracts.MetadataUsecase
}

func NewMetadataController(logger *zap.Logger, metadataUsecase contracts.MetadataUsecase) *MetadataController {
	return &MetadataController{
		Log:             logger,
		MetadataUsecase: metadataUsecase,
	}
}

func (ctrl *MetadataController) GetMappings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	snapshot, err := ctrl.MetadataUsecase.Snapshot(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.Mappings{
		DataElements: snapshot.DataElements,
		Attributes:   snapshot.Attributes,
		Labels:       snapshot.Labels,
		ResolvedAt:   snapshot.ResolvedAt,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMappingsSuccessMessage, response)
}

func (ctrl *MetadataController) RefreshMappings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	snapshot, err := ctrl.MetadataUsecase.Refresh(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.Mappings{
		DataElements: snapshot.DataElements,
		Attributes:   snapshot.Attributes,
		Labels:       snapshot.Labels,
		ResolvedAt:   snapshot.ResolvedAt,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshMappingsSuccessMessage, response)
}

func (ctrl *MetadataController) GetOrgUnits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orgUnits, err := ctrl.MetadataUsecase.OrgUnits(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.OrgUnits{OrganisationUnits: orgUnits}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrgUnitsSuccessMessage, response)
}
