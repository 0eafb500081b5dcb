package model

import (
	"strings"
	"time"
)

// DefaultCountry is assumed whenever an address comes in without one.
const DefaultCountry = "Deutschland"

type Address struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	Uuid        string    `gorm:"uniqueIndex" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	FirstName   string    `gorm:"not null" json:"firstName"`
	LastName    string    `gorm:"not null" json:"lastName"`
	Street      string    `gorm:"not null" json:"street"`
	HouseNumber string    `gorm:"not null" json:"houseNumber"`
	ZipCode     string    `gorm:"not null" json:"zipCode"`
	City        string    `gorm:"not null" json:"city"`
	Country     string    `gorm:"not null" json:"country"`
}

// Normalize trims surrounding whitespace from every field.
func (a *Address) Normalize() {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Street = strings.TrimSpace(a.Street)
	a.HouseNumber = strings.TrimSpace(a.HouseNumber)
	a.ZipCode = strings.TrimSpace(a.ZipCode)
	a.City = strings.TrimSpace(a.City)
	a.Country = strings.TrimSpace(a.Country)
}

// Validate checks all address fields to ensure they are in the required format
func (a Address) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(a.FirstName) == "" {
		errs["firstname"] = "Vorname darf nicht leer sein"
	}

	if strings.TrimSpace(a.LastName) == "" {
		errs["lastname"] = "Nachname darf nicht leer sein"
	}

	if strings.TrimSpace(a.Street) == "" {
		errs["street"] = "Straße darf nicht leer sein"
	}

	if strings.TrimSpace(a.HouseNumber) == "" {
		errs["housenumber"] = "Hausnummer darf nicht leer sein"
	}

	if strings.TrimSpace(a.ZipCode) == "" {
		errs["zipcode"] = "PLZ darf nicht leer sein"
	}

	if strings.TrimSpace(a.City) == "" {
		errs["city"] = "Stadt darf nicht leer sein"
	}

	if strings.TrimSpace(a.Country) == "" {
		errs["country"] = "Land darf nicht leer sein"
	}

	return errs
}

// Filter returns the addresses whose concatenated fields contain the query,
// matching case-insensitively. An empty query returns the input unchanged.
func Filter(addresses []Address, query string) []Address {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return addresses
	}

	filtered := make([]Address, 0, len(addresses))
	for _, address := range addresses {
		haystack := strings.ToLower(strings.Join([]string{
			address.FirstName,
			address.LastName,
			address.Street,
			address.HouseNumber,
			address.ZipCode,
			address.City,
			address.Country,
		}, " "))
		if strings.Contains(haystack, query) {
			filtered = append(filtered, address)
		}
	}
	return filtered
}

// BulkFieldCount is the number of comma-separated fields a bulk line holds.
const BulkFieldCount = 7

// BulkLine is one parsed line of a bulk paste. FieldCount keeps the raw
// number of comma-separated fields, so a line with surplus fields (for
// example a street containing a comma) can be rejected instead of stored
// truncated.
type BulkLine struct {
	Address    Address
	FieldCount int
}

// ParseBulk parses pasted text with one address per line, seven
// comma-separated fields in fixed order. Missing trailing fields default to
// the empty string, except the country which defaults to DefaultCountry.
func ParseBulk(text string) []BulkLine {
	var lines []BulkLine

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		field := func(i int) string {
			if i < len(parts) {
				return parts[i]
			}
			return ""
		}
		address := Address{
			FirstName:   field(0),
			LastName:    field(1),
			Street:      field(2),
			HouseNumber: field(3),
			ZipCode:     field(4),
			City:        field(5),
			Country:     field(6),
		}
		if address.Country == "" {
			address.Country = DefaultCountry
		}
		lines = append(lines, BulkLine{Address: address, FieldCount: len(parts)})
	}

	return lines
}
