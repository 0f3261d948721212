package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/models"
	"github.com/huellitas/shelter-backend/internal/services"
	"github.com/huellitas/shelter-backend/internal/types"
	"gorm.io/gorm"
)

// Auth validates the bearer token and loads the authenticated user into the
// request context under Locals("user").
func Auth(db *gorm.DB, signKey []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := services.CurrentUser(db, signKey, c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// Require checks that the authenticated user's role is allowed to perform
// the named action. It must run after Auth.
func Require(action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromContext(c)
		if user == nil {
			return types.NewUnauthenticated("Could not validate credentials")
		}
		if !Allowed(action, user.Role) {
			return types.NewPermissionDenied("No tiene permisos para realizar esta acción")
		}
		return c.Next()
	}
}

// UserFromContext returns the authenticated user stored by Auth, or nil.
func UserFromContext(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
