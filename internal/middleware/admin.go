package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils" // JWT claims type
)

// AdminOnlyMiddleware checks the admin claim on each request. The claim is
// granted two ways: logging in as the bootstrap admin account, or presenting
// the separate admin-unlock secret. Both land here identically.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims") // Get claims stored by JWTAuthMiddleware
		// Check if claims exist in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		jwtClaims, ok := claims.(*utils.Claims) // Cast to the claims type
		// Check if the token carries the admin claim
		if !ok || !jwtClaims.Admin {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
