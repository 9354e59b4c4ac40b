package handler

import (
	"crypto/subtle"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/revalidate"
)

// revalidationSecretHeader carries the shared secret set on the CMS
// webhook configuration.
const revalidationSecretHeader = "x-revalidation-secret"

// Revalidate is the CMS publish webhook: it maps the published content
// type to the pages it feeds and broadcasts the purge. An unparsable
// payload or unknown type purges everything.
func Revalidate(inv revalidate.Invalidator, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return jsonError(c, fiber.StatusInternalServerError, "REVALIDATION_SECRET not configured")
		}

		provided := c.Get(revalidationSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return jsonError(c, fiber.StatusUnauthorized, "Invalid secret")
		}

		var body struct {
			Type string `json:"_type"`
		}
		paths := revalidate.AllPaths
		if err := json.Unmarshal(c.Body(), &body); err == nil && body.Type != "" {
			paths = revalidate.PathsFor(body.Type)
		}

		inv.Invalidate(c.UserContext(), paths...)

		return c.JSON(fiber.Map{"revalidated": true, "now": time.Now().UnixMilli()})
	}
}
