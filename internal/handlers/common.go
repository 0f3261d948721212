package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/huellitas/shelter-backend/internal/types"
)

// parseID extracts a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewValidation(fmt.Sprintf("Invalid %s: %s", name, raw))
	}
	return uint(id), nil
}

// parseBody unmarshals the JSON request body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.NewValidation("Invalid request body")
	}
	return nil
}

// sendImage streams raw image bytes. Absent images produce a 404 rather than
// an empty body.
func sendImage(c *fiber.Ctx, image []byte, notFoundMessage string) error {
	if len(image) == 0 {
		return types.NewNotFound(notFoundMessage)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Status(fiber.StatusOK).Send(image)
}

// imageURL builds the public link to an entity image endpoint.
func imageURL(apiURL, resource string, id uint) string {
	return fmt.Sprintf("%s/%s/%d/image", apiURL, resource, id)
}
