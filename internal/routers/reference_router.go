package routers

import (
	"TrailGuide/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupReferenceRouter(api fiber.Router, server *cmd.Server, protect fiber.Handler) {
	sectionHandler := server.SectionHandler
	api.Get("/sections", protect, sectionHandler.ListSections)
	api.Get("/sections/:id", protect, sectionHandler.GetSection)
	api.Put("/sections/:id", protect, sectionHandler.PutSection)

	categoryHandler := server.CategoryHandler
	api.Get("/categories", protect, categoryHandler.ListCategories)
	api.Get("/categories/:id", protect, categoryHandler.GetCategory)
	api.Put("/categories/:id", protect, categoryHandler.PutCategory)
	api.Delete("/categories/:id", protect, categoryHandler.DeleteCategory)

	layerHandler := server.LayerHandler
	api.Get("/layers", protect, layerHandler.ListLayers)
	api.Post("/layers", protect, layerHandler.CreateLayer)
	api.Get("/layers/:id", protect, layerHandler.GetLayer)
	api.Put("/layers/:id", protect, layerHandler.PutLayer)
	api.Delete("/layers/:id", protect, layerHandler.DeleteLayer)

	api.Get("/settings", protect, server.SettingsHandler.GetSettings)
	api.Put("/settings", protect, server.SettingsHandler.PutSettings)
	api.Get("/feedback", protect, server.FeedbackHandler.ListFeedback)
}
