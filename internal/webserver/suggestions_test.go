package webserver_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/designedbycarl/adressbuch/internal/datasource/nominatim"
	"github.com/designedbycarl/adressbuch/internal/webserver/infrastructure"
)

func TestSuggestions(t *testing.T) {
	type suggestion struct {
		PlaceID     int64  `json:"placeId"`
		DisplayName string `json:"displayName"`
		Street      string `json:"street"`
		HouseNumber string `json:"houseNumber"`
		ZipCode     string `json:"zipCode"`
		City        string `json:"city"`
		Country     string `json:"country"`
	}

	decode := func(response *http.Response, t *testing.T) []suggestion {
		t.Helper()

		var suggestions []suggestion
		if err := json.NewDecoder(response.Body).Decode(&suggestions); err != nil {
			t.Fatalf("Couldn't decode suggestions: %v", err)
		}
		return suggestions
	}

	t.Run("Results carry the visitor's country, not the geocoder's", func(t *testing.T) {
		db := infrastructure.Connect(":memory:", bootstrapCode)
		geocoder := &geocoderMock{
			results: []nominatim.Result{
				{
					PlaceID:     100001,
					DisplayName: "Hauptstraße 5, 10827 Berlin, Deutschland",
					Address: nominatim.RawAddress{
						HouseNumber: "5",
						Road:        "Hauptstraße",
						City:        "Berlin",
						Postcode:    "10827",
						Country:     "Germany",
						CountryCode: "de",
					},
				},
			},
		}
		app := bootstrapApp(db, geocoder)
		cookie, err := login(app, bootstrapCode, t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := getRequest(cookie, app, "/addresses/suggestions?q="+url.QueryEscape("Hauptstraße 5")+"&country=AT", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		suggestions := decode(response, t)
		if len(suggestions) != 1 {
			t.Fatalf("Expected 1 suggestion, got %d", len(suggestions))
		}
		got := suggestions[0]
		if got.Street != "Hauptstraße" || got.HouseNumber != "5" || got.ZipCode != "10827" || got.City != "Berlin" {
			t.Errorf("Wrong suggestion mapping: %#v", got)
		}
		if got.Country != "Österreich" {
			t.Errorf("Expected the selected country label, got %q", got.Country)
		}

		if geocoder.lastQuery != "Hauptstraße 5" || geocoder.lastCountry != "AT" {
			t.Errorf("Wrong upstream call: query %q, country %q", geocoder.lastQuery, geocoder.lastCountry)
		}
	})

	t.Run("The country defaults to Germany when none is selected", func(t *testing.T) {
		db := infrastructure.Connect(":memory:", bootstrapCode)
		geocoder := &geocoderMock{}
		app := bootstrapApp(db, geocoder)
		cookie, err := login(app, bootstrapCode, t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		if _, err := getRequest(cookie, app, "/addresses/suggestions?q=Dorfstr", t); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if geocoder.lastCountry != "DE" {
			t.Errorf("Expected country to default to DE, got %q", geocoder.lastCountry)
		}
	})

	t.Run("A village locality survives the mapping", func(t *testing.T) {
		db := infrastructure.Connect(":memory:", bootstrapCode)
		geocoder := &geocoderMock{
			results: []nominatim.Result{
				{
					PlaceID:     100003,
					DisplayName: "Dorfstraße 2, Klein Bünzow",
					Address: nominatim.RawAddress{
						HouseNumber: "2",
						Road:        "Dorfstraße",
						Village:     "Klein Bünzow",
						Postcode:    "17390",
					},
				},
			},
		}
		app := bootstrapApp(db, geocoder)
		cookie, err := login(app, bootstrapCode, t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := getRequest(cookie, app, "/addresses/suggestions?q="+url.QueryEscape("Dorfstraße 2"), t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		suggestions := decode(response, t)
		if len(suggestions) != 1 || suggestions[0].City != "Klein Bünzow" {
			t.Errorf("Expected the village as locality, got %#v", suggestions)
		}
	})

	t.Run("An upstream failure yields an empty list, not an error page", func(t *testing.T) {
		db := infrastructure.Connect(":memory:", bootstrapCode)
		geocoder := &geocoderMock{err: errors.New("upstream down")}
		app := bootstrapApp(db, geocoder)
		cookie, err := login(app, bootstrapCode, t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := getRequest(cookie, app, "/addresses/suggestions?q=Hauptstr", t)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		if suggestions := decode(response, t); len(suggestions) != 0 {
			t.Errorf("Expected no suggestions, got %d", len(suggestions))
		}
	})
}
