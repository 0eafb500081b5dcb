package address

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Delete removes an address for good. There is no soft-delete.
func (a *Controller) Delete(c *fiber.Ctx) error {
	existing, err := a.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if existing == nil {
		return fiber.ErrNotFound
	}

	if err := a.repository.Delete(existing.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}

	a.hub.Broadcast()

	c.Cookie(&fiber.Cookie{
		Name:    "success-once",
		Value:   "Adresse gelöscht",
		Expires: time.Now().Add(24 * time.Hour),
	})

	return c.Redirect("/")
}
