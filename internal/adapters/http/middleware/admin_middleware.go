package middleware

import (
	"strings"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/core/services"
	"github.com/Jeffstark223/nursa-ehub-2026/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth gates privileged endpoints behind the single shared admin
// bearer token. A token minted before the most recent admin login is
// rejected; the gate holds no per-request state of its own.
func AdminAuth(adminService *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Unauthorized")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if !adminService.Verify(token) {
			return response.Unauthorized(c, "Unauthorized")
		}

		return c.Next()
	}
}
