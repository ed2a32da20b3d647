package routers

import (
	"screening-service/internal/app/services/core/metadata"

	"github.com/go-chi/chi/v5"
)

func attachMetadataRoutes(router chi.Router, metadataController *metadata.MetadataController) {
	router.Get("/mappings", metadataController.GetMappings)
	router.Post("/refresh", metadataController.RefreshMappings)
	router.Get("/org-units", metadataController.GetOrgUnits)
}
