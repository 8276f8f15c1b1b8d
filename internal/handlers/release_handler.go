package handlers

import (
	"TrailGuide/internal/services"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ReleaseHandler struct {
	service services.ReleaseService
}

func NewReleaseHandler(service services.ReleaseService) *ReleaseHandler {
	return &ReleaseHandler{service: service}
}

func releaseVersion(c *fiber.Ctx) (uint, bool) {
	version, err := strconv.ParseUint(c.Params("version"), 10, 32)
	if err != nil || version == 0 {
		return 0, false
	}
	return uint(version), true
}

func (h *ReleaseHandler) ListReleases(c *fiber.Ctx) error {
	releases, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(releases)
}

func (h *ReleaseHandler) GetRelease(c *fiber.Ctx) error {
	version, ok := releaseVersion(c)
	if !ok {
		return badRequest(c, "invalid release version")
	}
	release, err := h.service.Get(c.UserContext(), version)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(release)
}

func (h *ReleaseHandler) SubmitRelease(c *fiber.Ctx) error {
	var req struct {
		ReleaseNotes string `json:"release_notes"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid input")
		}
	}

	release, err := h.service.Submit(c.UserContext(), req.ReleaseNotes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(release)
}

// PublishRelease accepts {"published": true}. Releases cannot be unpublished.
func (h *ReleaseHandler) PublishRelease(c *fiber.Ctx) error {
	version, ok := releaseVersion(c)
	if !ok {
		return badRequest(c, "invalid release version")
	}
	var req struct {
		Published bool `json:"published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}
	if !req.Published {
		return badRequest(c, "releases can only be published")
	}

	release, err := h.service.Publish(c.UserContext(), version)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(release)
}

func (h *ReleaseHandler) DownloadBundle(c *fiber.Ctx) error {
	version, ok := releaseVersion(c)
	if !ok {
		return badRequest(c, "invalid release version")
	}
	f, release, err := h.service.OpenBundle(c.UserContext(), version)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"release-%d.zip\"", release.Version))
	return c.SendStream(f, int(release.BundleSize))
}
