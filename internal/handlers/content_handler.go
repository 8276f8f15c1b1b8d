package handlers

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/models"
	"TrailGuide/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// SnapshotHandler serves the compiled content the apps consume.
type SnapshotHandler struct {
	service services.CompilerService
}

func NewSnapshotHandler(service services.CompilerService) *SnapshotHandler {
	return &SnapshotHandler{service: service}
}

func (h *SnapshotHandler) GetSnapshot(c *fiber.Ctx) error {
	snapshot, err := h.service.BuildSnapshot(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}

type InfoHandler struct {
	configuration *config.Configuration
}

func NewInfoHandler(configuration *config.Configuration) *InfoHandler {
	return &InfoHandler{configuration: configuration}
}

func (h *InfoHandler) GetInfo(c *fiber.Ctx) error {
	return c.JSON(h.configuration.PublicConfig())
}

type SettingsHandler struct {
	service services.SettingsService
}

func NewSettingsHandler(service services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) PutSettings(c *fiber.Ctx) error {
	var values map[string]*string
	if err := c.BodyParser(&values); err != nil {
		return badRequest(c, "invalid input")
	}

	settings, err := h.service.Set(c.UserContext(), values)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

type FeedbackHandler struct {
	service services.FeedbackService
}

func NewFeedbackHandler(service services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) SubmitFeedback(c *fiber.Ctx) error {
	var feedback models.Feedback
	if err := c.BodyParser(&feedback); err != nil {
		return badRequest(c, "invalid input")
	}

	saved, err := h.service.Submit(c.UserContext(), &feedback)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(saved)
}

func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	feedback, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feedback)
}

type TokenHandler struct {
	service services.AuthService
}

func NewTokenHandler(service services.AuthService) *TokenHandler {
	return &TokenHandler{service: service}
}

// IssueOTT hands out a short lived token for links that cannot carry headers.
func (h *TokenHandler) IssueOTT(c *fiber.Ctx) error {
	token, err := h.service.IssueOTT(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(token)
}

type JanitorHandler struct {
	janitor *services.Janitor
}

func NewJanitorHandler(janitor *services.Janitor) *JanitorHandler {
	return &JanitorHandler{janitor: janitor}
}

func (h *JanitorHandler) ListUnreachable(c *fiber.Ctx) error {
	candidates, err := h.janitor.Candidates(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	if candidates == nil {
		candidates = []string{}
	}
	return c.JSON(candidates)
}

func (h *JanitorHandler) ForceClean(c *fiber.Ctx) error {
	report, err := h.janitor.ForceStartCleanCycle(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(report)
}
