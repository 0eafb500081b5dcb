package address

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// List renders the address book, filtered by the optional q parameter.
// Filtering is a pure in-memory substring match and never touches the
// store beyond loading the snapshot.
func (a *Controller) List(c *fiber.Ctx) error {
	addresses, err := a.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	query := c.Query("q")

	message := c.Cookies("success-once")
	if message != "" {
		c.Cookie(&fiber.Cookie{
			Name:    "success-once",
			Value:   "",
			Expires: time.Now().Add(-time.Hour),
		})
	}

	return c.Render("address/index", fiber.Map{
		"Title":     "Adressbuch",
		"Addresses": model.Filter(addresses, query),
		"Total":     len(addresses),
		"Query":     query,
		"Countries": Countries,
		"Success":   message,
		"Errors":    map[string]string{},
		"Session":   c.Locals("Session"),
	}, "layout")
}
