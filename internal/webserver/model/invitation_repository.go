package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type InvitationRepository struct {
	DB *gorm.DB
}

// Create persists a new invitation. Code uniqueness is enforced by the
// store's unique index, not by a lookup beforehand; callers treat a
// constraint violation as "code already exists".
func (i *InvitationRepository) Create(invitation *Invitation) error {
	if result := i.DB.Create(invitation); result.Error != nil {
		log.Printf("error creating invitation: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// FindByCode looks up an invitation by its normalized code, valid or not.
func (i *InvitationRepository) FindByCode(code string) (*Invitation, error) {
	var invitation Invitation

	result := i.DB.Where("code = ?", code).Limit(1).First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding invitation: %s\n", result.Error)
		return nil, result.Error
	}
	return &invitation, nil
}

// FindValid looks up an invitation by its normalized code, restricted to
// codes whose validity flag is set.
func (i *InvitationRepository) FindValid(code string) (*Invitation, error) {
	var invitation Invitation

	result := i.DB.Where("code = ? AND is_valid = ?", code, true).Limit(1).First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding valid invitation: %s\n", result.Error)
		return nil, result.Error
	}
	return &invitation, nil
}

func (i *InvitationRepository) Total() int64 {
	var totalRows int64

	i.DB.Model(&Invitation{}).Count(&totalRows)
	return totalRows
}
