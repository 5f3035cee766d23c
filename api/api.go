package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			ErrorHandler: handleFiberError,
		}),
		listenAddress: listenAddress,
	}
}

// handleFiberError maps framework-raised errors (unknown routes, malformed
// requests, body limits) to the service's {"error": ...} JSON contract.
func handleFiberError(c *fiber.Ctx, err error) error {
	code := fiber.StatusBadRequest

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}
