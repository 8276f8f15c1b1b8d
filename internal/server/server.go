package server

import (
	"TrailGuide/cmd"
	"TrailGuide/internal/handlers"
	"TrailGuide/internal/routers"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(server *cmd.Server) *fiber.App {
	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.MaxContentLength(),
		Concurrency:  cfg.Server.Concurrency * 1024,
		AppName:      "TrailGuide",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: server.LogService.Log.Out}))
	app.Use("/api/v1", cors.New())

	routers.SetupRoutes(app, server)
	return app
}

func Listen(app *fiber.App, server *cmd.Server) error {
	return app.Listen(fmt.Sprintf(":%d", server.Configuration.Server.Port))
}
