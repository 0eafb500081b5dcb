package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// minQueryLength bounds request volume; shorter queries return nothing
	// without touching the network.
	minQueryLength = 3
	maxResults     = 5

	acceptLanguage = "de-DE,de;q=0.9,en-US;q=0.8,en;q=0.7"
	// Nominatim's usage policy requires an identifying client label.
	userAgent = "Adressbuch/1.0"
)

// RawAddress is the structured address attached to every geocoding result.
type RawAddress struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	State       string `json:"state"`
}

// Locality resolves the result's locality, falling back from city to town
// to village, first non-empty wins.
func (a RawAddress) Locality() string {
	if a.City != "" {
		return a.City
	}
	if a.Town != "" {
		return a.Town
	}
	return a.Village
}

type Result struct {
	PlaceID     int64      `json:"place_id"`
	DisplayName string     `json:"display_name"`
	Lat         string     `json:"lat"`
	Lon         string     `json:"lon"`
	Address     RawAddress `json:"address"`
}

type Service struct {
	baseURL string
	client  *http.Client
}

func NewService(baseURL string, client *http.Client) Service {
	return Service{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// Search queries the geocoding service for addresses matching query,
// optionally restricted to a country, and returns at most maxResults
// deduplicated results. Queries shorter than minQueryLength return nil
// without issuing a request.
func (s Service) Search(ctx context.Context, query, countryCode string) ([]Result, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minQueryLength {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", fmt.Sprint(maxResults))
	if countryCode != "" {
		params.Set("countrycodes", strings.ToLower(countryCode))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/search?%s", s.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var results []Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}

	return Deduplicate(results), nil
}

// Deduplicate collapses results sharing the same street, house number,
// postcode and resolved locality, keeping the first-seen one.
func Deduplicate(results []Result) []Result {
	seen := make(map[string]struct{}, len(results))
	unique := make([]Result, 0, len(results))

	for _, result := range results {
		key := strings.Join([]string{
			result.Address.Road,
			result.Address.HouseNumber,
			result.Address.Postcode,
			result.Address.Locality(),
		}, "-")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, result)
	}

	return unique
}
