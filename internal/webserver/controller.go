package webserver

import (
	"gorm.io/gorm"

	"github.com/designedbycarl/adressbuch/internal/webserver/controller/address"
	"github.com/designedbycarl/adressbuch/internal/webserver/controller/auth"
	"github.com/designedbycarl/adressbuch/internal/webserver/controller/download"
	"github.com/designedbycarl/adressbuch/internal/webserver/controller/invitation"
	"github.com/designedbycarl/adressbuch/internal/webserver/hub"
	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

type Controllers struct {
	Auth        *auth.Controller
	Addresses   *address.Controller
	Invitations *invitation.Controller
	Downloads   *download.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, geocoder address.Geocoder) Controllers {
	addressesRepository := &model.AddressRepository{DB: db}
	invitationsRepository := &model.InvitationRepository{DB: db}
	addressesHub := hub.New(addressesRepository)

	authCfg := auth.Config{
		Secret:         cfg.Secret(),
		SessionTimeout: cfg.SessionTimeout,
	}

	addressesCfg := address.Config{
		ImportChunkSize: 50,
	}

	return Controllers{
		Auth:        auth.NewController(invitationsRepository, authCfg),
		Addresses:   address.NewController(addressesRepository, geocoder, addressesHub, addressesCfg),
		Invitations: invitation.NewController(invitationsRepository),
		Downloads:   download.NewController(addressesRepository),
	}
}
