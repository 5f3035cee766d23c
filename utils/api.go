package utils

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/traini8/backend/database"
	"github.com/traini8/backend/utils/response"
)

// MakeHTTPHandleFunc adapts a store-taking handler into a fiber handler,
// converting an unexpected error return into a 500 {"error": ...} reply.
func MakeHTTPHandleFunc(handler func(c *fiber.Ctx, store database.Storage) error, store database.Storage) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := handler(c, store); err != nil {
			return response.InternalServerError(c, err.Error())
		}
		return nil
	}
}
