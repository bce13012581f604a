package session

import (
	"sync"
	"time"

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"
)

// Session owns one login's working state: the ingredient catalog and the
// technical-sheet ledger. Neither outlives the session; only accounts
// persist across restarts. All access goes through the methods below, which
// hand out copies, so two requests on the same session never share slices.
type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time

	mu      sync.Mutex
	catalog []domain.Ingredient
	ledger  []domain.Recipe
	nextID  int
}

// AddIngredient appends to the catalog. Name uniqueness is deliberately not
// enforced; duplicates have always been allowed and costing resolves to the
// first match. Flagged for product clarification, do not "fix" here.
func (s *Session) AddIngredient(ing domain.Ingredient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = append(s.catalog, ing)
}

// DeleteIngredient removes every catalog entry whose name matches exactly,
// duplicates included, and returns how many were removed.
func (s *Session) DeleteIngredient(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.catalog[:0]
	removed := 0
	for _, ing := range s.catalog {
		if ing.Name == name {
			removed++
			continue
		}
		kept = append(kept, ing)
	}
	s.catalog = kept
	return removed
}

// Ingredients returns a copy of the catalog in insertion order.
func (s *Session) Ingredients() []domain.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ingredient, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// AddRecipe assigns the next sequential ID, appends to the ledger and
// returns the stored recipe. Recipes are never updated or deleted.
func (s *Session) AddRecipe(r domain.Recipe) domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	r.ID = s.nextID
	s.ledger = append(s.ledger, r)
	return r
}

// Recipes returns a copy of the ledger in save order.
func (s *Session) Recipes() []domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Recipe, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// RecipeByID looks up one saved recipe.
func (s *Session) RecipeByID(id int) (domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.ledger {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recipe{}, false
}
