package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

// List returns the full address collection ordered by creation time,
// newest first. The id breaks ties between equal timestamps so the order
// stays stable.
func (a *AddressRepository) List() ([]Address, error) {
	var addresses []Address

	result := a.DB.Order("created_at DESC, id DESC").Find(&addresses)
	if result.Error != nil {
		log.Printf("error listing addresses: %s\n", result.Error)
		return nil, result.Error
	}

	return addresses, nil
}

func (a *AddressRepository) Total() int64 {
	var totalRows int64

	a.DB.Model(&Address{}).Count(&totalRows)
	return totalRows
}

func (a *AddressRepository) FindByUuid(uuid string) (*Address, error) {
	var address Address

	result := a.DB.Where("uuid = ?", uuid).First(&address)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding address: %s\n", result.Error)
		return nil, result.Error
	}
	return &address, nil
}

func (a *AddressRepository) Create(address *Address) error {
	if result := a.DB.Create(address); result.Error != nil {
		log.Printf("error creating address: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// CreateAll inserts the given addresses in chunks of chunkSize, each chunk
// inside its own transaction. It returns the per-address errors, indexed
// like the input; already committed chunks are not rolled back.
func (a *AddressRepository) CreateAll(addresses []Address, chunkSize int) []error {
	errs := make([]error, len(addresses))

	for start := 0; start < len(addresses); start += chunkSize {
		end := start + chunkSize
		if end > len(addresses) {
			end = len(addresses)
		}
		a.DB.Transaction(func(tx *gorm.DB) error {
			for i := start; i < end; i++ {
				if result := tx.Create(&addresses[i]); result.Error != nil {
					log.Printf("error creating address %d of bulk: %s\n", i+1, result.Error)
					errs[i] = result.Error
				}
			}
			return nil
		})
	}

	return errs
}

// Update applies a partial change to the address identified by uuid. Only
// the given columns change; the update timestamp is bumped by the store.
func (a *AddressRepository) Update(uuid string, fields map[string]interface{}) error {
	result := a.DB.Model(&Address{}).Where("uuid = ?", uuid).Updates(fields)
	if result.Error != nil {
		log.Printf("error updating address: %s\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *AddressRepository) Delete(uuid string) error {
	result := a.DB.Where("uuid = ?", uuid).Delete(&Address{})
	if result.Error != nil {
		log.Printf("error deleting address: %s\n", result.Error)
		return result.Error
	}
	return nil
}
