package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonSuccess wraps list and status payloads, such as recent identifications,
// in the {"status":"ok","data":...} envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError writes {"status":"error","error":message}. The error key is what
// the upload and symptom forms display.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
