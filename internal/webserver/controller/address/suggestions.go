package address

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type suggestion struct {
	PlaceID     int64  `json:"placeId"`
	DisplayName string `json:"displayName"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// Suggestions proxies the geocoding service for the autocomplete. Upstream
// failures fail open to an empty list; the form simply shows no
// suggestions. The request context is threaded through, so an abandoned
// request cancels the upstream call with it.
func (a *Controller) Suggestions(c *fiber.Ctx) error {
	countryCode := c.Query("country", "DE")

	results, err := a.geocoder.Search(c.Context(), c.Query("q"), countryCode)
	if err != nil {
		log.Printf("error fetching address suggestions: %v\n", err)
		return c.JSON([]suggestion{})
	}

	suggestions := make([]suggestion, 0, len(results))
	for _, result := range results {
		suggestions = append(suggestions, suggestion{
			PlaceID:     result.PlaceID,
			DisplayName: result.DisplayName,
			Street:      result.Address.Road,
			HouseNumber: result.Address.HouseNumber,
			ZipCode:     result.Address.Postcode,
			City:        result.Address.Locality(),
			// The country comes from the visitor's explicit selection,
			// not from the raw result.
			Country: countryLabel(countryCode),
		})
	}

	return c.JSON(suggestions)
}
