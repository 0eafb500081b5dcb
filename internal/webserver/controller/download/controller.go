package download

import (
	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

type addressesRepository interface {
	List() ([]model.Address, error)
	FindByUuid(uuid string) (*model.Address, error)
}

type Controller struct {
	repository addressesRepository
}

func NewController(repository addressesRepository) *Controller {
	return &Controller{
		repository: repository,
	}
}
