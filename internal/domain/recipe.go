package domain

// RecipeLine is one ingredient/quantity row of a technical sheet.
type RecipeLine struct {
	Ingredient string  `json:"ingredient"` // Catalog name, may be empty for an unused form row
	Quantity   float64 `json:"quantity"`   // Quantity in the ingredient's unit
}

// Recipe Model (a "technical sheet")
type Recipe struct {
	ID          int          `json:"id"`          // Sequential per session, assigned at save
	Name        string       `json:"name"`        // Product name
	Lines       []RecipeLine `json:"lines"`       // Ordered ingredient rows as submitted
	Ingredients string       `json:"ingredients"` // "Name: qty; ..." listing, joined at save
	Preparation string       `json:"preparation"` // Free preparation text
	YieldKg     float64      `json:"yield_kg"`    // Declared yield by weight
	YieldUnits  int          `json:"yield_units"` // Declared yield by unit count
	TotalCost   float64      `json:"total_cost"`  // Frozen at save time, never recomputed
}
