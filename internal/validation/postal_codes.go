package validation

import (
	"sort"
	"strings"
)

// cambodiaPostalCodes maps city/khan names to their postal code. Forms
// auto-fill the code from this table; validation pins it for known cities.
var cambodiaPostalCodes = map[string]string{
	"Phnom Penh":             "120101",
	"Khan Chamkar Mon":       "120101",
	"Khan Doun Penh":         "120201",
	"Khan 7 Makara":          "120301",
	"Khan Toul Kork":         "120401",
	"Khan Dangkao":           "120501",
	"Khan Mean Chey":         "120601",
	"Khan Russey Keo":        "120701",
	"Khan Sen Sok":           "120801",
	"Khan Pou Senchey":       "120901",
	"Khan Chroy Changvar":    "121001",
	"Khan Prampir Meakkakra": "121101",
	"Khan Chbar Ampov":       "121201",
	"Khan Boeng Keng Kang":   "121301",
	"Khan Kamboul":           "121401",
	"Siem Reap":              "170101",
	"Battambang":             "020101",
	"Kampong Cham":           "030101",
	"Sihanoukville":          "180101",
	"Preah Sihanouk":         "180101",
	"Kandal":                 "080101",
	"Ta Khmau":               "080101",
	"Kampot":                 "070101",
	"Kep":                    "230101",
	"Takeo":                  "210101",
	"Kampong Speu":           "050101",
	"Kampong Thom":           "060101",
	"Kampong Chhnang":        "040101",
	"Pursat":                 "150101",
	"Koh Kong":               "090101",
	"Kratié":                 "100101",
	"Mondulkiri":             "110101",
	"Ratanakiri":             "160101",
	"Stung Treng":            "190101",
	"Preah Vihear":           "130101",
	"Oddar Meanchey":         "220101",
	"Banteay Meanchey":       "010101",
	"Pailin":                 "240101",
}

// PostalCodeOf returns the postal code for a known city. Lookup is exact
// first, then case-insensitive.
func PostalCodeOf(city string) (string, bool) {
	if code, ok := cambodiaPostalCodes[city]; ok {
		return code, true
	}
	for name, code := range cambodiaPostalCodes {
		if strings.EqualFold(name, city) {
			return code, true
		}
	}
	return "", false
}

// City is one row of the city reference list served to forms.
type City struct {
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
}

// Cities returns the city reference list sorted by name.
func Cities() []City {
	cities := make([]City, 0, len(cambodiaPostalCodes))
	for name, code := range cambodiaPostalCodes {
		cities = append(cities, City{Name: name, PostalCode: code})
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities
}
