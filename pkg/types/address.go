package types

import "strings"

// Address is a delivery destination as collected at checkout.
type Address struct {
	Street       string  `json:"street"`
	Apartment    *string `json:"apartment,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	Instructions *string `json:"instructions,omitempty"`
}

// IsZero reports whether no address fields were supplied.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.ZipCode) == ""
}

// String renders the single-line form shown on order summaries.
func (a Address) String() string {
	parts := []string{a.Street}
	if a.Apartment != nil && strings.TrimSpace(*a.Apartment) != "" {
		parts = append(parts, *a.Apartment)
	}
	parts = append(parts, a.City, a.State+" "+a.ZipCode)
	return strings.Join(parts, ", ")
}
