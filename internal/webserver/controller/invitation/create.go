package invitation

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// Create issues a new invitation code and renders its shareable link. The
// surface is idempotent: a code that already exists is not an error, the
// existing record's link is rendered instead. Uniqueness itself is
// enforced by the store's unique index, not by a lookup beforehand.
func (i *Controller) Create(c *fiber.Ctx) error {
	code := model.NormalizeCode(c.FormValue("code"))
	if code == "" {
		return c.Status(fiber.StatusUnprocessableEntity).Render("invitation/new", fiber.Map{
			"Title":   "Neue Einladung erstellen",
			"Errors":  map[string]string{"code": "Code darf nicht leer sein"},
			"Session": c.Locals("Session"),
		}, "layout")
	}

	invitation := &model.Invitation{
		Code:        code,
		IsValid:     true,
		Description: defaultDescription,
	}
	if description := strings.TrimSpace(c.FormValue("description")); description != "" {
		invitation.Description = description
	}

	message := "Einladungscode erstellt!"
	if err := i.repository.Create(invitation); err != nil {
		existing, ferr := i.repository.FindByCode(code)
		if ferr != nil || existing == nil {
			log.Printf("error creating invitation code: %v\n", err)
			return fiber.ErrInternalServerError
		}
		invitation = existing
		message = "Einladung bereits vorhanden - Link generiert"
	}

	return c.Render("invitation/created", fiber.Map{
		"Title":   "Einladung bereit",
		"Code":    invitation.Code,
		"Link":    shareLink(c, invitation.Code),
		"Success": message,
		"Session": c.Locals("Session"),
	}, "layout")
}
