package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/traini8/backend/database"
	"github.com/traini8/backend/utils/response"
)

// HandleCheckHealth confirms the API is up. Replies unconditionally; the
// store is not consulted.
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	return response.Message(c, "Traini8 Backend API is running")
}
