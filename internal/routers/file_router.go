package routers

import (
	"TrailGuide/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupFileRouter(api fiber.Router, server *cmd.Server, protect fiber.Handler) {
	assetHandler := server.AssetHandler
	api.Get("/assets/:id/bytes", assetHandler.DownloadAsset)
	api.Get("/asset_types", protect, assetHandler.ListTypes)
	api.Get("/assets", protect, assetHandler.ListAssets)
	api.Post("/assets", protect, assetHandler.UploadAsset)
	api.Get("/assets/unreachable", protect, server.JanitorHandler.ListUnreachable)
	api.Get("/assets/:id", protect, assetHandler.GetAsset)
	api.Put("/assets/:id", protect, assetHandler.UpdateAsset)
	api.Delete("/assets/:id", protect, assetHandler.DeleteAsset)
}
