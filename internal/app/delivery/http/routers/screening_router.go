package routers

import (
	"fmt"
	"screening-service/internal/app/services/core/screenings"
	"screening-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScreeningRoutes(router chi.Router, screeningController *screenings.ScreeningController) {
	router.Post("/", screeningController.CreateScreening)
	router.Post("/score", screeningController.PreviewScore)
	router.Post("/client-code", screeningController.PreviewClientCode)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamEventID), screeningController.GetScreening)
	router.Put(fmt.Sprintf("/{%s}", constvars.URLParamEventID), screeningController.UpdateScreening)
}
