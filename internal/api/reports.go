package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"github.com/gin-gonic/gin" // Gin web framework

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"  // Importing domain models
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/reports" // Report aggregator
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils"   // Utility functions
)

// Summary of the most expensive sheet, without the full recipe body
type MostExpensiveResponse struct {
	ID        int     `json:"id"`         // Sheet ID
	Name      string  `json:"name"`       // Sheet name
	TotalCost float64 `json:"total_cost"` // Frozen cost
}

// Report summary over the session's ledger
type ReportsResponse struct {
	Empty         bool                   `json:"empty"`                    // True when no sheets are saved
	Count         int                    `json:"count"`                    // Number of saved sheets
	TotalCost     float64                `json:"total_cost"`               // Sum over all sheets
	AverageCost   float64                `json:"average_cost"`             // Mean, only meaningful when not empty
	MostExpensive *MostExpensiveResponse `json:"most_expensive,omitempty"` // Absent when empty
}

// reportsCacheKey builds the per-session cache key for the report summary
func reportsCacheKey(sessionID string) string {
	return "reports:session:" + sessionID
}

// ReportsHandler returns summary statistics over the saved sheets, cached
// per session and invalidated whenever a sheet is saved
func ReportsHandler(cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := context.Background()          // Context for Redis operations
		cacheKey := reportsCacheKey(sess.ID) // Per-session cache key
		var cached ReportsResponse           // Cached summary
		found, err := utils.GetCache(ctx, cache, cacheKey, &cached) // Try the cache first
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"report": cached, "cached": true})
			return
		}
		ledger := sess.Recipes()    // Snapshot of the ledger
		resp := buildReport(ledger) // Aggregate the summary
		// Cache the summary for 60 seconds
		_ = utils.SetCache(ctx, cache, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"report": resp, "cached": false}) // Return the summary
	}
}

// buildReport aggregates the ledger into the response shape. The empty flag
// is the explicit "no data" signal the average and max need.
func buildReport(ledger []domain.Recipe) ReportsResponse {
	resp := ReportsResponse{
		Empty:     len(ledger) == 0,
		Count:     len(ledger),
		TotalCost: reports.TotalCost(ledger),
	}
	if avg, ok := reports.AverageCost(ledger); ok {
		resp.AverageCost = avg
	}
	if top, ok := reports.MostExpensive(ledger); ok {
		resp.MostExpensive = &MostExpensiveResponse{
			ID:        top.ID,
			Name:      top.Name,
			TotalCost: top.TotalCost,
		}
	}
	return resp
}
