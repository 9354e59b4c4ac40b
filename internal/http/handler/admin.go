package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/auth"
)

const sessionMaxAge = 24 * time.Hour

// AdminLogin exchanges the admin password for the session cookie.
func AdminLogin(sessions *auth.Sessions, secureCookies bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Password string `json:"password"`
		}
		if err := c.BodyParser(&body); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if !sessions.Configured() {
			return jsonError(c, fiber.StatusInternalServerError,
				"Admin password not configured. Set ADMIN_PASSWORD environment variable.")
		}

		if !sessions.CheckPassword(body.Password) {
			return jsonError(c, fiber.StatusUnauthorized, "Invalid password")
		}

		token, err := sessions.Token()
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError,
				"Admin password not configured. Set ADMIN_PASSWORD environment variable.")
		}

		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(sessionMaxAge.Seconds()),
			HTTPOnly: true,
			Secure:   secureCookies,
			SameSite: fiber.CookieSameSiteStrictMode,
		})

		return c.JSON(fiber.Map{"ok": true})
	}
}

// AdminLogout clears the session cookie. The token itself stays valid
// until expiry or a password rotation; there is no server-side session
// state to revoke.
func AdminLogout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteStrictMode,
		})
		return c.JSON(fiber.Map{"ok": true})
	}
}
