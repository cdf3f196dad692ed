package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie holding the access token.
const CookieName = "access_token"

// Middleware gates protected routes. It reads the access token from the
// session cookie, verifies it and stores the subject id and status in the
// request locals. It deliberately does not touch the database: a valid
// token proves the claim was issued by this process, nothing more.
// Handlers that need a live identity re-check the store themselves.
func Middleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		claims, err := ParseToken(tokenStr, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("status", claims.Status)

		return c.Next()
	}
}

// UserID returns the subject id attached by Middleware, or "" when the
// request did not pass through the gate.
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_id").(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return ""
}
