package handlers

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// idFromPath fills in an empty body ID from the route and rejects a body that
// names a different one.
func idFromPath(c *fiber.Ctx, bodyID *string) error {
	id := c.Params("id")
	if *bodyID == "" {
		*bodyID = id
	}
	if *bodyID != id {
		return models.NewValidationError("id may not be changed")
	}
	return nil
}

type SectionHandler struct {
	service services.SectionService
}

func NewSectionHandler(service services.SectionService) *SectionHandler {
	return &SectionHandler{service: service}
}

func (h *SectionHandler) ListSections(c *fiber.Ctx) error {
	sections, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sections)
}

func (h *SectionHandler) GetSection(c *fiber.Ctx) error {
	section, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(section)
}

func (h *SectionHandler) PutSection(c *fiber.Ctx) error {
	var section models.Section
	if err := c.BodyParser(&section); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := idFromPath(c, &section.ID); err != nil {
		return respondError(c, err)
	}

	saved, err := h.service.Put(c.UserContext(), &section)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

type CategoryHandler struct {
	service services.CategoryService
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) PutCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := idFromPath(c, &category.ID); err != nil {
		return respondError(c, err)
	}

	saved, err := h.service.Put(c.UserContext(), &category)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type LayerHandler struct {
	service services.LayerService
}

func NewLayerHandler(service services.LayerService) *LayerHandler {
	return &LayerHandler{service: service}
}

func (h *LayerHandler) ListLayers(c *fiber.Ctx) error {
	enabledOnly, err := services.ParseFlag(c.Query("enabled"))
	if err != nil {
		return badRequest(c, "invalid enabled flag")
	}
	layers, err := h.service.List(c.UserContext(), enabledOnly)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(layers)
}

func (h *LayerHandler) GetLayer(c *fiber.Ctx) error {
	layer, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(layer)
}

func (h *LayerHandler) CreateLayer(c *fiber.Ctx) error {
	var layer models.Layer
	if err := c.BodyParser(&layer); err != nil {
		return badRequest(c, "invalid input")
	}

	created, err := h.service.Create(c.UserContext(), &layer)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

func (h *LayerHandler) PutLayer(c *fiber.Ctx) error {
	var layer models.Layer
	if err := c.BodyParser(&layer); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := idFromPath(c, &layer.ID); err != nil {
		return respondError(c, err)
	}

	saved, err := h.service.Put(c.UserContext(), &layer)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

func (h *LayerHandler) DeleteLayer(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
