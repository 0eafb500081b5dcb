package invitation

import (
	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// QR renders the invitation link for the given code as a scannable PNG.
func (i *Controller) QR(c *fiber.Ctx) error {
	code := model.NormalizeCode(c.Query("code"))
	if code == "" {
		return fiber.ErrBadRequest
	}

	png, err := qrcode.Encode(shareLink(c, code), qrcode.Medium, 256)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
