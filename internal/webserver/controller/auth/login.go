package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// Login shows the invitation code form. A code arriving in the invite
// query parameter is prefilled so the visitor only has to confirm it.
func (a *Controller) Login(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{
		"Title": "Anmelden",
		"Code":  model.NormalizeCode(c.Query("invite")),
	}, "layout")
}
