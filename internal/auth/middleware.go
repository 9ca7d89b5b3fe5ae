package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal_email"

// Middleware guards protected routes. It expects an Authorization: Bearer
// header, validates the token and stores the subject email in the request
// locals. Missing, malformed, tampered and expired tokens all end in the
// same 401.
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return unauthorized(c, "missing token")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "invalid token")
		}

		raw := strings.TrimSpace(parts[1])
		if !tokens.Validate(raw) {
			return unauthorized(c, "invalid or expired token")
		}

		email, err := tokens.Subject(raw)
		if err != nil || email == "" {
			return unauthorized(c, "invalid token")
		}

		c.Locals(principalKey, email)
		return c.Next()
	}
}

// Principal returns the authenticated email set by Middleware, or "" on an
// unprotected route.
func Principal(c *fiber.Ctx) string {
	email, _ := c.Locals(principalKey).(string)
	return email
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  fiber.StatusUnauthorized,
		"error":   "Unauthorized",
		"message": message,
		"path":    c.Path(),
	})
}
