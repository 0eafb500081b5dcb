package address

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// Create validates the submitted address and persists it. Validation
// failures re-render the form with per-field messages before any store
// call is made.
func (a *Controller) Create(c *fiber.Ctx) error {
	address := model.Address{
		FirstName:   c.FormValue("firstname"),
		LastName:    c.FormValue("lastname"),
		Street:      c.FormValue("street"),
		HouseNumber: c.FormValue("housenumber"),
		ZipCode:     c.FormValue("zipcode"),
		City:        c.FormValue("city"),
		Country:     c.FormValue("country"),
	}
	address.Normalize()

	if errs := address.Validate(); len(errs) > 0 {
		return a.renderListWithForm(c, address, errs)
	}

	address.Uuid = uuid.NewString()
	if err := a.repository.Create(&address); err != nil {
		log.Printf("error creating address: %v\n", err)
		return a.renderListWithForm(c, address, map[string]string{
			"summary": "Fehler beim Speichern der Adresse",
		})
	}

	a.hub.Broadcast()

	c.Cookie(&fiber.Cookie{
		Name:    "success-once",
		Value:   "Adresse erfolgreich hinzugefügt",
		Expires: time.Now().Add(24 * time.Hour),
	})

	return c.Redirect("/")
}

func (a *Controller) renderListWithForm(c *fiber.Ctx, address model.Address, errs map[string]string) error {
	addresses, err := a.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("address/index", fiber.Map{
		"Title":     "Adressbuch",
		"Addresses": addresses,
		"Total":     len(addresses),
		"Query":     "",
		"Countries": Countries,
		"Address":   address,
		"Errors":    errs,
		"Session":   c.Locals("Session"),
	}, "layout")
}
