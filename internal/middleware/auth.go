package middleware

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// Protected rejects requests without a bearer token or one-time token that
// carries the scope the request method needs.
func Protected(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := auth.Authorize(
			c.UserContext(),
			c.Get(fiber.HeaderAuthorization),
			c.Query("token"),
			c.Method(),
		)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// CurrentPrincipal returns the principal stored by Protected, if any.
func CurrentPrincipal(c *fiber.Ctx) *models.Principal {
	principal, _ := c.Locals(principalKey).(*models.Principal)
	return principal
}
