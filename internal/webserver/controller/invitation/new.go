package invitation

import (
	"github.com/gofiber/fiber/v2"
)

// NewForm shows the form for issuing a new invitation code.
func (i *Controller) NewForm(c *fiber.Ctx) error {
	return c.Render("invitation/new", fiber.Map{
		"Title":   "Neue Einladung erstellen",
		"Errors":  map[string]string{},
		"Session": c.Locals("Session"),
	}, "layout")
}
