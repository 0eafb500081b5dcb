package address

import (
	"context"

	"github.com/designedbycarl/adressbuch/internal/datasource/nominatim"
	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

type addressesRepository interface {
	List() ([]model.Address, error)
	Total() int64
	FindByUuid(uuid string) (*model.Address, error)
	Create(address *model.Address) error
	CreateAll(addresses []model.Address, chunkSize int) []error
	Update(uuid string, fields map[string]interface{}) error
	Delete(uuid string) error
}

// Geocoder is the address search collaborator feeding the autocomplete.
type Geocoder interface {
	Search(ctx context.Context, query, countryCode string) ([]nominatim.Result, error)
}

type broadcaster interface {
	Subscribe() (<-chan []model.Address, func())
	Broadcast()
}

type Config struct {
	// ImportChunkSize bounds how many bulk-import rows share one
	// transaction, so a large paste never turns into one unbounded burst.
	ImportChunkSize int
}

type Controller struct {
	repository addressesRepository
	geocoder   Geocoder
	hub        broadcaster
	config     Config
}

func NewController(repository addressesRepository, geocoder Geocoder, hub broadcaster, cfg Config) *Controller {
	if cfg.ImportChunkSize < 1 {
		cfg.ImportChunkSize = 50
	}
	return &Controller{
		repository: repository,
		geocoder:   geocoder,
		hub:        hub,
		config:     cfg,
	}
}
