// Package presenter renders the uniform response envelope shared by all
// resource endpoints: {"success": bool, "data": T|null, "error": string|null}.
package presenter

import "github.com/gofiber/fiber/v2"

// Envelope is the wire format of every resource response.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// Success writes a success envelope with the given status and payload.
func Success(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data})
}

// Error writes a failure envelope with the given status and message.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: &message})
}
