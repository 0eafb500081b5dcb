package auth

import (
	"time"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "adressbuch"

type invitationsRepository interface {
	FindValid(code string) (*model.Invitation, error)
}

type Config struct {
	Secret         []byte
	SessionTimeout time.Duration
}

type Controller struct {
	repository invitationsRepository
	config     Config
}

func NewController(repository invitationsRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
