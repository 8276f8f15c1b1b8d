package routers

import (
	"TrailGuide/cmd"
	"TrailGuide/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the API under /api/v1.
func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group("/api/v1")
	protect := middleware.Protected(server.AuthService)

	SetupPublicRouter(api, server)
	SetupContentRouter(api, server, protect)
	SetupFileRouter(api, server, protect)
	SetupReferenceRouter(api, server, protect)
	SetupReleaseRouter(api, server, protect)
	SetupJanitorRouter(api, server, protect)
}

func SetupPublicRouter(api fiber.Router, server *cmd.Server) {
	api.Get("/info", server.InfoHandler.GetInfo)
	api.Get("/snapshot", server.SnapshotHandler.GetSnapshot)
	api.Post("/feedback", server.FeedbackHandler.SubmitFeedback)
}
