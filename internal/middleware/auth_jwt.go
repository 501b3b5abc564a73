package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogfeed/internal/auth"
)

// BearerAuth extracts the bearer token and stores the verified user id in
// Locals("user_id"). A missing, malformed or expired token is not an error;
// the request continues anonymously and each resolver decides for itself.
func BearerAuth(tokens *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return c.Next()
		}

		uid, err := tokens.Parse(strings.TrimSpace(header[7:]))
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
