package address

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// formColumns maps form field names to their store columns.
var formColumns = map[string]string{
	"firstname":   "first_name",
	"lastname":    "last_name",
	"street":      "street",
	"housenumber": "house_number",
	"zipcode":     "zip_code",
	"city":        "city",
	"country":     "country",
}

// Update applies a partial change to an existing address. Only fields
// present in the request body are touched; the merged record must still
// pass full validation.
func (a *Controller) Update(c *fiber.Ctx) error {
	existing, err := a.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if existing == nil {
		return fiber.ErrNotFound
	}

	targets := map[string]*string{
		"firstname":   &existing.FirstName,
		"lastname":    &existing.LastName,
		"street":      &existing.Street,
		"housenumber": &existing.HouseNumber,
		"zipcode":     &existing.ZipCode,
		"city":        &existing.City,
		"country":     &existing.Country,
	}

	fields := map[string]interface{}{}
	for name, target := range targets {
		if !c.Request().PostArgs().Has(name) {
			continue
		}
		value := strings.TrimSpace(c.FormValue(name))
		*target = value
		fields[formColumns[name]] = value
	}

	if errs := existing.Validate(); len(errs) > 0 {
		return a.renderListWithForm(c, *existing, errs)
	}

	if len(fields) > 0 {
		if err := a.repository.Update(existing.Uuid, fields); err != nil {
			return a.renderListWithForm(c, *existing, map[string]string{
				"summary": "Fehler beim Speichern der Adresse",
			})
		}
		a.hub.Broadcast()
	}

	c.Cookie(&fiber.Cookie{
		Name:    "success-once",
		Value:   "Adresse erfolgreich aktualisiert",
		Expires: time.Now().Add(24 * time.Hour),
	})

	return c.Redirect("/")
}
