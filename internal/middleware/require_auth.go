package middleware

import (
	"github.com/gofiber/fiber/v2"

	"blogfeed/internal/authctx"
)

// RequireAuth guards the non-GraphQL routes (image upload). GraphQL
// operations enforce auth themselves through the policy table.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.UserIDFrom(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authenticated!",
			})
		}
		return c.Next()
	}
}
