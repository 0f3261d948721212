package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// VersionMiddleware records the client's requested API version so handlers can
// branch on it if a breaking change ever ships.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version")
		switch version {
		case "", "1.0":
			version = "1.0.0"
		}
		c.Locals("apiVersion", version)
		return c.Next()
	}
}
