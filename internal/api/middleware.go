package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecal/internal/services"
)

const contextOwnerKey = "current_owner"

// OwnerRequired scopes the request to the owner named in the path. Ownership
// is a storage partition here, not an identity check.
func (handler *Handler) OwnerRequired(c *fiber.Ctx) error {
	owner, err := services.NormalizeOwnerID(c.Params("owner"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}
	c.Locals(contextOwnerKey, owner)
	return c.Next()
}

func currentOwner(c *fiber.Ctx) (string, bool) {
	owner, ok := c.Locals(contextOwnerKey).(string)
	return owner, ok && owner != ""
}
