package address

import "github.com/designedbycarl/adressbuch/internal/webserver/model"

type Country struct {
	Label string
	Code  string
}

// Countries offered in the autocomplete country selector. The label is
// what gets stored on the address, regardless of what the geocoder's raw
// result claims.
var Countries = []Country{
	{"Deutschland", "DE"},
	{"Österreich", "AT"},
	{"Schweiz", "CH"},
	{"Schweden", "SE"},
	{"Frankreich", "FR"},
	{"Italien", "IT"},
	{"Spanien", "ES"},
	{"Vereinigtes Königreich", "GB"},
	{"USA", "US"},
	{"Niederlande", "NL"},
	{"Belgien", "BE"},
}

func countryLabel(code string) string {
	for _, country := range Countries {
		if country.Code == code {
			return country.Label
		}
	}
	return model.DefaultCountry
}
