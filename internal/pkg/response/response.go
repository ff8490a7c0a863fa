package response

import "github.com/gofiber/fiber/v2"

// By election-frontend convention, expected conflicts (already voted,
// already registered, bad login, voting closed) are delivered as HTTP 200
// with success=false. Only Unauthorized (401), request-shape problems (400)
// and storage failures (500) use error status codes.

// OK sends a success response with the payload fields spread at the top
// level next to the success flag.
func OK(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(body)
}

// OKMessage sends a success response with a message and optional payload.
func OKMessage(c *fiber.Ctx, message string, payload fiber.Map) error {
	body := fiber.Map{"success": true, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(body)
}

// Fail sends an expected-conflict response (HTTP 200, success=false).
func Fail(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": false, "message": message})
}

// BadRequest sends a 400 response.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// InternalServerError sends a 500 response. Internal detail is logged by
// the caller, never exposed here.
func InternalServerError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
