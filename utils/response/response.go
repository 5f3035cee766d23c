package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the wire shape of every failure reply
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the wire shape of plain informational replies
type MessageBody struct {
	Message string `json:"message"`
}

// OK returns a 200 response with the given payload as the whole body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created returns a 201 Created response with the payload as the whole body
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message returns a 200 response with a {"message": ...} body
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageBody{Message: message})
}

// Error returns an {"error": ...} response with the given status code
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// InternalServerError returns a 500 Internal Server Error response
func InternalServerError(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return Error(c, fiber.StatusInternalServerError, message)
}

// DatabaseError returns a 500 response carrying the underlying store
// failure message. The transaction that produced the error has already
// been rolled back by the store.
func DatabaseError(c *fiber.Ctx, err error) error {
	return Error(c, fiber.StatusInternalServerError, "Database error: "+err.Error())
}
