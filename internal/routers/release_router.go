package routers

import (
	"TrailGuide/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupReleaseRouter(api fiber.Router, server *cmd.Server, protect fiber.Handler) {
	releaseHandler := server.ReleaseHandler
	api.Get("/releases", protect, releaseHandler.ListReleases)
	api.Post("/releases", protect, releaseHandler.SubmitRelease)
	api.Get("/releases/:version", protect, releaseHandler.GetRelease)
	api.Put("/releases/:version", protect, releaseHandler.PublishRelease)
	api.Get("/releases/:version/bundle", protect, releaseHandler.DownloadBundle)
}
