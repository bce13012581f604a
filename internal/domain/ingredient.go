package domain

// Ingredient Model
type Ingredient struct {
	Name string  `json:"name"` // Display name, duplicates permitted (see catalog notes)
	Cost float64 `json:"cost"` // Cost per unit, non-negative
	Unit string  `json:"unit"` // Measurement unit, one of Units
}

// Units lists the accepted measurement units for an ingredient.
var Units = []string{"kg", "L", "un", "g", "ml"}

// ValidUnit reports whether u is an accepted measurement unit.
func ValidUnit(u string) bool {
	for _, v := range Units {
		if u == v {
			return true
		}
	}
	return false
}
