package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain" // Importing domain models
)

// Request struct for registering an ingredient
type CreateIngredientRequest struct {
	Name string  `json:"name" binding:"required"` // Ingredient name must be provided
	Cost float64 `json:"cost" binding:"gte=0"`    // Unit cost, zero is allowed
	Unit string  `json:"unit" binding:"required"` // Measurement unit must be provided
}

// ListIngredientsHandler returns the session's ingredient catalog
func ListIngredientsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Return the catalog in insertion order
		c.JSON(http.StatusOK, gin.H{"ingredients": sess.Ingredients()})
	}
}

// CreateIngredientHandler registers a new ingredient in the session catalog
func CreateIngredientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateIngredientRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with no state change
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the measurement unit against the accepted set
		if !domain.ValidUnit(req.Unit) {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unit must be one of kg, L, un, g, ml"})
			return
		}
		// Append to the catalog; duplicate names are permitted
		ing := domain.Ingredient{Name: req.Name, Cost: req.Cost, Unit: req.Unit}
		sess.AddIngredient(ing)
		// Log the registration
		logrus.WithFields(logrus.Fields{
			"session_id": sess.ID,  // Working session
			"ingredient": req.Name, // Ingredient name
			"cost":       req.Cost, // Unit cost
			"unit":       req.Unit, // Measurement unit
		}).Info("Ingredient registered")
		// Return the stored ingredient
		c.JSON(http.StatusCreated, gin.H{"message": "Ingredient registered", "ingredient": ing})
	}
}

// DeleteIngredientHandler removes every catalog entry with the given name
func DeleteIngredientHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		name := c.Param("name") // Ingredient name from the URL
		if name == "" {
			// Nothing selected to delete
			c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredient selected"})
			return
		}
		// Remove all exact-name matches, duplicates included
		removed := sess.DeleteIngredient(name)
		if removed == 0 {
			// Name matched nothing in the catalog
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		// Log the deletion
		logrus.WithFields(logrus.Fields{
			"session_id": sess.ID, // Working session
			"ingredient": name,    // Deleted name
			"removed":    removed, // Entries removed
		}).Info("Ingredient deleted")
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted", "removed": removed})
	}
}
