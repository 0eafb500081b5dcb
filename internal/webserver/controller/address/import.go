package address

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

type importLineError struct {
	Line    int
	Message string
}

// Import parses pasted text with one address per line and inserts the
// valid lines in bounded chunks. The outcome is best-effort: lines that
// made it in stay in, failures are reported per line.
func (a *Controller) Import(c *fiber.Ctx) error {
	parsed := model.ParseBulk(c.FormValue("addresses"))
	if len(parsed) == 0 {
		return a.renderImportReport(c, 0, []importLineError{{Line: 0, Message: "Keine Adressen gefunden"}})
	}

	var (
		lineErrors []importLineError
		valid      []model.Address
		validLines []int
	)

	for i, line := range parsed {
		if line.FieldCount > model.BulkFieldCount {
			lineErrors = append(lineErrors, importLineError{Line: i + 1, Message: "Zu viele Felder in der Zeile"})
			continue
		}
		address := line.Address
		if errs := address.Validate(); len(errs) > 0 {
			for _, message := range errs {
				lineErrors = append(lineErrors, importLineError{Line: i + 1, Message: message})
				break
			}
			continue
		}
		address.Uuid = uuid.NewString()
		valid = append(valid, address)
		validLines = append(validLines, i+1)
	}

	imported := 0
	for i, err := range a.repository.CreateAll(valid, a.config.ImportChunkSize) {
		if err != nil {
			lineErrors = append(lineErrors, importLineError{Line: validLines[i], Message: "Fehler beim Speichern"})
			continue
		}
		imported++
	}

	if imported > 0 {
		a.hub.Broadcast()
	}

	if len(lineErrors) == 0 {
		c.Cookie(&fiber.Cookie{
			Name:    "success-once",
			Value:   fmt.Sprintf("%d Adressen erfolgreich importiert", imported),
			Expires: time.Now().Add(24 * time.Hour),
		})
		return c.Redirect("/")
	}

	return a.renderImportReport(c, imported, lineErrors)
}

func (a *Controller) renderImportReport(c *fiber.Ctx, imported int, lineErrors []importLineError) error {
	addresses, err := a.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("address/index", fiber.Map{
		"Title":        "Adressbuch",
		"Addresses":    addresses,
		"Total":        len(addresses),
		"Query":        "",
		"Countries":    Countries,
		"Errors":       map[string]string{},
		"Imported":     imported,
		"ImportErrors": lineErrors,
		"Session":      c.Locals("Session"),
	}, "layout")
}
