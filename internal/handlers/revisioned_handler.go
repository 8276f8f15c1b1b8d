package handlers

import (
	"TrailGuide/internal/dto"
	"TrailGuide/internal/models"
	"TrailGuide/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RevisionedHandler serves the revision history API of one content type.
type RevisionedHandler[T any, PT models.RevisionedPtr[T]] struct {
	service services.EntityService[T]
	qr      func(id string) ([]byte, error)
}

type StationHandler = RevisionedHandler[models.Station, *models.Station]
type PageHandler = RevisionedHandler[models.Page, *models.Page]
type ModalHandler = RevisionedHandler[models.Modal, *models.Modal]

func NewStationHandler(service services.StationService, qrService services.QRService) *StationHandler {
	return &StationHandler{service: service, qr: qrService.StationQR}
}

func NewPageHandler(service services.PageService, qrService services.QRService) *PageHandler {
	return &PageHandler{service: service, qr: qrService.PageQR}
}

func NewModalHandler(service services.ModalService) *ModalHandler {
	return &ModalHandler{service: service}
}

// HasQR reports whether the content type has a QR code route.
func (h *RevisionedHandler[T, PT]) HasQR() bool {
	return h.qr != nil
}

func (h *RevisionedHandler[T, PT]) parseBody(c *fiber.Ctx) (*T, string, error) {
	entity := new(T)
	if err := c.BodyParser(entity); err != nil {
		return nil, "", err
	}
	var msg dto.RevisionMessage
	if err := c.BodyParser(&msg); err != nil {
		return nil, "", err
	}
	return entity, msg.RevisionMsg, nil
}

func (h *RevisionedHandler[T, PT]) List(c *fiber.Ctx) error {
	filter, err := services.ParseFilter(c.Query("filter"))
	if err != nil {
		return respondError(c, err)
	}
	if filter.Deleted == nil {
		deleted := false
		filter.Deleted = &deleted
	}

	entities, err := h.service.ListCurrent(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entities)
}

func (h *RevisionedHandler[T, PT]) Get(c *fiber.Ctx) error {
	entity, err := h.service.GetCurrent(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entity)
}

func (h *RevisionedHandler[T, PT]) Create(c *fiber.Ctx) error {
	entity, message, err := h.parseBody(c)
	if err != nil {
		return badRequest(c, "invalid input")
	}

	created, err := h.service.Create(c.UserContext(), entity, message)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// Update appends a revision. With ?revision=N the write only succeeds while N
// is still the current revision.
func (h *RevisionedHandler[T, PT]) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	entity, message, err := h.parseBody(c)
	if err != nil {
		return badRequest(c, "invalid input")
	}
	if bodyID := PT(entity).EntityID(); bodyID != "" && bodyID != id {
		return respondError(c, models.NewValidationError("id may not be changed"))
	}

	var updated *T
	if prior := c.Query("revision"); prior != "" {
		expected, convErr := strconv.Atoi(prior)
		if convErr != nil || expected < 0 {
			return badRequest(c, "invalid revision")
		}
		updated, err = h.service.CreateRevisionAt(c.UserContext(), id, entity, message, expected)
	} else {
		updated, err = h.service.CreateRevision(c.UserContext(), id, entity, message)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *RevisionedHandler[T, PT]) Delete(c *fiber.Ctx) error {
	var msg dto.RevisionMessage
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&msg); err != nil {
			return badRequest(c, "invalid input")
		}
	}

	deleted, err := h.service.SoftDelete(c.UserContext(), c.Params("id"), msg.RevisionMsg)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(deleted)
}

func (h *RevisionedHandler[T, PT]) History(c *fiber.Ctx) error {
	history, err := h.service.ListHistory(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}

func (h *RevisionedHandler[T, PT]) Revision(c *fiber.Ctx) error {
	revision, err := strconv.Atoi(c.Params("rev"))
	if err != nil || revision < 1 {
		return badRequest(c, "invalid revision")
	}

	entity, err := h.service.GetRevision(c.UserContext(), c.Params("id"), revision)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entity)
}

// QR renders a PNG QR code linking the app to the entity. The entity must
// exist.
func (h *RevisionedHandler[T, PT]) QR(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.service.GetCurrent(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	png, err := h.qr(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
