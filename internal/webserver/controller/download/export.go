package download

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/designedbycarl/adressbuch/internal/export"
)

// CSV serves the whole address book as a CSV file download.
func (d *Controller) CSV(c *fiber.Ctx) error {
	addresses, err := d.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.CSVFileName))
	return c.Send(export.CSV(addresses))
}

// XLSX serves the whole address book as a spreadsheet workbook download.
func (d *Controller) XLSX(c *fiber.Ctx) error {
	addresses, err := d.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	contents, err := export.XLSX(addresses)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.XLSXFileName))
	return c.Send(contents)
}

// Sheets serves the address book tab-separated, the shape the page script
// puts on the clipboard before opening a blank spreadsheet tab.
func (d *Controller) Sheets(c *fiber.Ctx) error {
	addresses, err := d.repository.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.Send(export.TSV(addresses))
}

// Address serves a single address as the one-line clipboard string.
func (d *Controller) Address(c *fiber.Ctx) error {
	address, err := d.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if address == nil {
		return fiber.ErrNotFound
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(export.FormatAddress(*address))
}
