package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/traini8/backend/database"
	"github.com/traini8/backend/handlers"
	trainingcenter_handlers "github.com/traini8/backend/handlers/trainingcenter"
	"github.com/traini8/backend/utils"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Initialize handlers with the injected store
	trainingCenterHandler := trainingcenter_handlers.NewTrainingCenterHandler(store)

	// Health check endpoint (public)
	app.Get("/", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// Training center endpoints
	app.Post("/training-center", trainingCenterHandler.CreateTrainingCenter)
	app.Get("/training-centers", trainingCenterHandler.ListTrainingCenters)
}
