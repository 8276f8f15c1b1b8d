package handlers

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &validationErr):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error":  "object validation failed",
			"errors": validationErr.Errors,
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrConflict):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCleaningInProgress):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	default:
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// ErrorHandler is installed on the fiber app for errors that escape handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}
