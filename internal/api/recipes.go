package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"  // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/costing" // Costing engine
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"  // Importing domain models
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/sheet"   // Printable sheet renderer
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils"   // Utility functions
)

// One ingredient/quantity row of the recipe form
type RecipeLineRequest struct {
	Ingredient string  `json:"ingredient"` // May be empty for an unused row
	Quantity   float64 `json:"quantity"`   // Quantity in the ingredient's unit
}

// Request struct for saving a technical sheet
type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required"`     // Product name must be provided
	Lines       []RecipeLineRequest `json:"lines"`                       // Ingredient rows, the form manages their count
	Preparation string              `json:"preparation"`                 // Free preparation text
	YieldKg     float64             `json:"yield_kg" binding:"gte=0"`    // Yield by weight
	YieldUnits  int                 `json:"yield_units" binding:"gte=0"` // Yield by unit count
}

// CreateRecipeHandler saves a technical sheet. The total cost is computed
// once here against the current catalog and frozen; later catalog changes
// never touch saved sheets.
func CreateRecipeHandler(cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateRecipeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with no state change
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		lines := make([]domain.RecipeLine, 0, len(req.Lines)) // Convert form rows
		named := 0                                            // Rows that actually reference an ingredient
		for _, l := range req.Lines {
			lines = append(lines, domain.RecipeLine{Ingredient: l.Ingredient, Quantity: l.Quantity})
			if l.Ingredient != "" {
				named++
			}
		}
		// A sheet needs at least one row with an ingredient selected
		if named == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe needs at least one ingredient"})
			return
		}
		catalog := sess.Ingredients()              // Snapshot of the current catalog
		total := costing.TotalCost(lines, catalog) // Compute and freeze the total cost
		listing := joinIngredientListing(lines)    // "Name: qty; ..." display string
		recipe := sess.AddRecipe(domain.Recipe{    // Append to the ledger
			Name:        req.Name,
			Lines:       lines,
			Ingredients: listing,
			Preparation: req.Preparation,
			YieldKg:     req.YieldKg,
			YieldUnits:  req.YieldUnits,
			TotalCost:   total,
		})
		// Log the save
		logrus.WithFields(logrus.Fields{
			"session_id": sess.ID,     // Working session
			"recipe":     recipe.Name, // Sheet name
			"recipe_id":  recipe.ID,   // Assigned ID
			"total_cost": total,       // Frozen cost
		}).Info("Technical sheet saved")
		// Invalidate the session's cached report summary
		_ = utils.DeleteCache(context.Background(), cache, reportsCacheKey(sess.ID))
		// Return the stored sheet
		c.JSON(http.StatusCreated, gin.H{"message": "Technical sheet saved", "recipe": recipe})
	}
}

// ListRecipesHandler returns every saved sheet in save order
func ListRecipesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Return the ledger
		c.JSON(http.StatusOK, gin.H{"recipes": sess.Recipes()})
	}
}

// GetRecipeHandler returns one saved sheet by ID
func GetRecipeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		recipe, ok := recipeFromParam(c, sess) // Resolve the :id parameter
		if !ok {
			return // Response already written
		}
		// Return the sheet
		c.JSON(http.StatusOK, gin.H{"recipe": recipe})
	}
}

// SheetHandler renders the printable document for one sheet, inline for
// preview or as a download with ?download=1.
func SheetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		recipe, ok := recipeFromParam(c, sess) // Resolve the :id parameter
		if !ok {
			return // Response already written
		}
		doc, err := sheet.Render(recipe) // Render the printable document
		if err != nil {
			// If rendering fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render sheet"})
			return
		}
		// Offer the document as a download when requested
		if c.Query("download") == "1" {
			filename := "ficha_tecnica_" + recipe.Name + ".html" // Same filename the tool always exported
			c.Header("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(filename, `"`, "")+`"`)
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc)) // Serve the document
	}
}

// recipeFromParam resolves the :id URL parameter to a saved sheet, writing
// the error response itself on failure.
func recipeFromParam(c *gin.Context, sess sessionReader) (domain.Recipe, bool) {
	id, err := strconv.Atoi(c.Param("id")) // Parse the ID
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return domain.Recipe{}, false
	}
	recipe, ok := sess.RecipeByID(id) // Look up the sheet
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return domain.Recipe{}, false
	}
	return recipe, true
}

// sessionReader is the slice of the session the lookup helper needs.
type sessionReader interface {
	RecipeByID(id int) (domain.Recipe, bool)
}

// joinIngredientListing builds the stored "Name: qty; Name: qty" string from
// the rows that reference an ingredient. Quantities print as plain decimals,
// never exponent notation; the string ends up on the printable sheet.
func joinIngredientListing(lines []domain.RecipeLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Ingredient == "" {
			continue
		}
		parts = append(parts, l.Ingredient+": "+strconv.FormatFloat(l.Quantity, 'f', -1, 64))
	}
	return strings.Join(parts, "; ")
}
