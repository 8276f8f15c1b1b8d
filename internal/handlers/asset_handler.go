package handlers

import (
	"TrailGuide/internal/services"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type AssetHandler struct {
	service services.AssetService
}

func NewAssetHandler(service services.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

// ListAssets returns the ledger with usage counts, or the bundle manifest
// script when as_js is set. With sha1 it returns the assets whose content has
// that checksum.
func (h *AssetHandler) ListAssets(c *fiber.Ctx) error {
	if checksum := c.Query("sha1"); checksum != "" {
		if _, err := hex.DecodeString(checksum); err != nil || len(checksum) != 40 {
			return badRequest(c, "sha1 must be 40 hexadecimal characters")
		}
		assets, err := h.service.FindByChecksum(c.UserContext(), checksum)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(assets)
	}

	asJS, err := services.ParseFlag(c.Query("as_js"))
	if err != nil {
		return badRequest(c, "invalid as_js")
	}
	if asJS {
		assets, err := h.service.List(c.UserContext(), true)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/javascript")
		return c.SendString(h.service.AssetManifestJS(assets))
	}

	assets, err := h.service.ListWithUsage(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(assets)
}

func (h *AssetHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.service.ListTypes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types)
}

func (h *AssetHandler) UploadAsset(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Invalid file")
	}
	enabled := true
	if value := c.FormValue("enabled"); value != "" {
		if enabled, err = services.ParseFlag(value); err != nil {
			return badRequest(c, "invalid enabled flag")
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "Invalid file")
	}
	defer src.Close()

	asset, err := h.service.Upload(c.UserContext(), src, fileHeader.Filename, c.FormValue("asset_type"), enabled)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(asset)
}

func (h *AssetHandler) GetAsset(c *fiber.Ctx) error {
	asset, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(asset)
}

// UpdateAsset accepts a multipart form with an optional replacement file and
// an optional enabled flag, or a JSON body with the flag only.
func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {
	id := c.Params("id")
	var enabled *bool
	var fileHeader *multipart.FileHeader

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if value := c.FormValue("enabled"); value != "" {
			flag, err := services.ParseFlag(value)
			if err != nil {
				return badRequest(c, "invalid enabled flag")
			}
			enabled = &flag
		}
		fileHeader, _ = c.FormFile("file")
	} else {
		var req struct {
			Enabled *bool `json:"enabled"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid input")
		}
		enabled = req.Enabled
	}

	asset, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if fileHeader != nil {
		src, err := fileHeader.Open()
		if err != nil {
			return badRequest(c, "Invalid file")
		}
		defer src.Close()
		if asset, err = h.service.ReplaceFile(c.UserContext(), id, src, fileHeader.Filename); err != nil {
			return respondError(c, err)
		}
	}
	if enabled != nil {
		if asset, err = h.service.SetEnabled(c.UserContext(), id, *enabled); err != nil {
			return respondError(c, err)
		}
	}
	return c.JSON(asset)
}

func (h *AssetHandler) DeleteAsset(c *fiber.Ctx) error {
	if err := h.service.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DownloadAsset streams the binary of an asset.
func (h *AssetHandler) DownloadAsset(c *fiber.Ctx) error {
	id := c.Params("id")
	asset, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	src, contentType, err := h.service.Open(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	if c.Query("download") != "" {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"%s\"", asset.FileName))
	}
	return c.SendStream(src)
}
