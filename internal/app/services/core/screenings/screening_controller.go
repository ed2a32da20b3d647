package screenings

import (
	"context"
	"net/http"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScreeningController struct {
	Log              *zap.Logger
	ScreeningUsecase contracts.ScreeningUsecase
	InternalConfig   *config.InternalConfig
}

func NewScreeningController(logger *zap.Logger, screeningUsecase contracts.ScreeningUsecase, internalConfig *config.InternalConfig) *ScreeningController {
	return &ScreeningController{
		Log:              logger,
		ScreeningUsecase: screeningUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *ScreeningController) saveTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.SaveTimeoutInSeconds) * time.Second
}

func (ctrl *ScreeningController) CreateScreening(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateScreening)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.saveTimeout())
	defer cancel()

	response, err := ctrl.ScreeningUsecase.CreateScreening(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateScreeningSuccessMessage, response)
}

func (ctrl *ScreeningController) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateScreening)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.EventID = chi.URLParam(r, constvars.URLParamEventID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.saveTimeout())
	defer cancel()

	response, err := ctrl.ScreeningUsecase.UpdateScreening(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.UpdateScreeningSuccessMessage
	switch response.Outcome {
	case models.SyncOutcomePartial:
		message = constvars.PartialScreeningUpdateMessage
	case models.SyncOutcomeNoChanges:
		message = constvars.NoChangesScreeningMessage
	case models.SyncOutcomeFailed:
		message = constvars.UpdateAppliedNothingMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *ScreeningController) GetScreening(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, constvars.URLParamEventID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScreeningUsecase.GetScreening(ctx, eventID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScreeningSuccessMessage, response)
}

func (ctrl *ScreeningController) PreviewScore(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ScorePreview)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.ScreeningUsecase.PreviewScore(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScoreScreeningSuccessMessage, response)
}

func (ctrl *ScreeningController) PreviewClientCode(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ClientCodePreview)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.ScreeningUsecase.PreviewClientCode(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClientCodePreviewSuccessMessage, response)
}
