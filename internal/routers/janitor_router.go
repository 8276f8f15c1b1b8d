package routers

import (
	"TrailGuide/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(api fiber.Router, server *cmd.Server, protect fiber.Handler) {
	api.Post("/ott", protect, server.TokenHandler.IssueOTT)
	api.Post("/janitor/clean", protect, server.JanitorHandler.ForceClean)
}
