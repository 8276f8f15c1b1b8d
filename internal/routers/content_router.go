package routers

import (
	"TrailGuide/cmd"
	"TrailGuide/internal/handlers"
	"TrailGuide/internal/models"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRouter(api fiber.Router, server *cmd.Server, protect fiber.Handler) {
	setupRevisionedRouter(api, "/stations", server.StationHandler, protect)
	setupRevisionedRouter(api, "/pages", server.PageHandler, protect)
	setupRevisionedRouter(api, "/modals", server.ModalHandler, protect)
}

func setupRevisionedRouter[T any, PT models.RevisionedPtr[T]](
	api fiber.Router,
	prefix string,
	handler *handlers.RevisionedHandler[T, PT],
	protect fiber.Handler,
) {
	group := api.Group(prefix, protect)
	group.Get("/", handler.List)
	group.Post("/", handler.Create)
	group.Get("/:id", handler.Get)
	group.Put("/:id", handler.Update)
	group.Delete("/:id", handler.Delete)
	group.Get("/:id/revisions", handler.History)
	group.Get("/:id/revisions/:rev", handler.Revision)
	if handler.HasQR() {
		group.Get("/:id/qr", handler.QR)
	}
}
