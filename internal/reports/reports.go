// Package reports aggregates summary statistics over the saved
// technical sheets.
package reports

import "github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"

// TotalCost sums the frozen cost of every sheet; zero for an empty ledger.
func TotalCost(ledger []domain.Recipe) float64 {
	var total float64
	for _, r := range ledger {
		total += r.TotalCost
	}
	return total
}

// AverageCost returns the arithmetic mean cost. The second return is false
// for an empty ledger, where the mean is undefined; callers must check it
// before using the value.
func AverageCost(ledger []domain.Recipe) (float64, bool) {
	if len(ledger) == 0 {
		return 0, false
	}
	return TotalCost(ledger) / float64(len(ledger)), true
}

// MostExpensive returns the sheet with the highest frozen cost. Ties go to
// the earliest entry in ledger order. The second return is false for an
// empty ledger.
func MostExpensive(ledger []domain.Recipe) (domain.Recipe, bool) {
	if len(ledger) == 0 {
		return domain.Recipe{}, false
	}
	best := ledger[0]
	for _, r := range ledger[1:] {
		if r.TotalCost > best.TotalCost {
			best = r
		}
	}
	return best, true
}
