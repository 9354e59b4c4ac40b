package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/content"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/revalidate"
)

// contentPages are the pages purged after an admin content edit.
var contentPages = []string{"/", "/contact", "/about"}

// GetContent serves one public content blob.
func GetContent(store *content.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := store.Get(c.UserContext(), c.Params("key"))
		if err != nil {
			if errors.Is(err, content.ErrUnknownKey) {
				return jsonError(c, fiber.StatusBadRequest, "Invalid key")
			}
			return jsonError(c, fiber.StatusInternalServerError, "Failed to load content")
		}
		if data == nil {
			return jsonError(c, fiber.StatusNotFound, "Content not found")
		}
		return c.Type("json").Send(data)
	}
}

// AdminGetContent serves one blob to the authenticated editor. Unlike the
// public route an absent blob comes back as JSON null, matching what the
// editor expects for a never-written key.
func AdminGetContent(store *content.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("key")
		if key == "" {
			return jsonError(c, fiber.StatusBadRequest, "Missing key parameter")
		}

		data, err := store.Get(c.UserContext(), key)
		if err != nil {
			if errors.Is(err, content.ErrUnknownKey) {
				return jsonError(c, fiber.StatusBadRequest, "Invalid content key")
			}
			return jsonError(c, fiber.StatusInternalServerError, "Failed to load content")
		}
		if data == nil {
			return c.Type("json").SendString("null")
		}
		return c.Type("json").Send(data)
	}
}

// AdminPutContent writes one blob and purges the pages built from it.
func AdminPutContent(store *content.Store, inv revalidate.Invalidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Key  string          `json:"key"`
			Data json.RawMessage `json:"data"`
		}
		if err := c.BodyParser(&body); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Key == "" || len(body.Data) == 0 {
			return jsonError(c, fiber.StatusBadRequest, "Missing key or data")
		}

		if err := store.Set(c.UserContext(), body.Key, body.Data); err != nil {
			switch {
			case errors.Is(err, content.ErrUnknownKey):
				return jsonError(c, fiber.StatusBadRequest, "Invalid content key")
			case errors.Is(err, content.ErrNotConfigured):
				return jsonError(c, fiber.StatusInternalServerError, err.Error())
			default:
				return jsonError(c, fiber.StatusInternalServerError, "Failed to save content")
			}
		}

		inv.Invalidate(c.UserContext(), contentPages...)

		return c.JSON(fiber.Map{"ok": true})
	}
}
