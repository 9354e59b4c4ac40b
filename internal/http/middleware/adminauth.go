package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/auth"
)

// AdminAuth gates admin API routes on the session cookie. Requests without
// a valid token get a 401 JSON error.
func AdminAuth(sessions *auth.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.Verify(c.Cookies(auth.CookieName)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}

// AdminPageGate protects the admin dashboard page. Unauthenticated
// requests are redirected to the login page instead of receiving JSON.
func AdminPageGate(sessions *auth.Sessions, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.Verify(c.Cookies(auth.CookieName)) {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}
