package invitation

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// defaultDescription marks codes issued from within the app.
const defaultDescription = "Generiert über App"

type invitationsRepository interface {
	Create(invitation *model.Invitation) error
	FindByCode(code string) (*model.Invitation, error)
}

type Controller struct {
	repository invitationsRepository
}

func NewController(repository invitationsRepository) *Controller {
	return &Controller{
		repository: repository,
	}
}

func shareLink(c *fiber.Ctx, code string) string {
	return fmt.Sprintf("%s/?invite=%s", c.Locals("fqdn").(string), url.QueryEscape(code))
}
