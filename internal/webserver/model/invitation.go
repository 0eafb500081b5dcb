package model

import (
	"strings"
	"time"
)

// Invitation represents a shareable invitation code granting access to the app
type Invitation struct {
	ID          uint   `gorm:"primarykey"`
	CreatedAt   time.Time
	Code        string `gorm:"uniqueIndex; not null"`
	IsValid     bool   `gorm:"not null; default:true"`
	Description string
}

// NormalizeCode trims and uppercases a code; every comparison and every
// stored code goes through this first.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
