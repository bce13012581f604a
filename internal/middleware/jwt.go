package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/session" // Session manager
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils"   // JWT utility functions
)

// JWTAuthMiddleware validates JWT tokens and stores the claims in context
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("claims", claims)            // Store full claims in context
		c.Set("username", claims.Username) // Store username in context
		c.Next()                           // Proceed to the next handler
	}
}

// SessionMiddleware resolves the live working session named by the token's
// session claim. Tokens without a session (admin-unlock tokens) and tokens
// whose session is gone (logout, restart) are rejected.
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims") // Get claims stored by JWTAuthMiddleware
		// Check if claims exist in context
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		jwtClaims, ok := claims.(*utils.Claims) // Cast to the claims type
		if !ok || jwtClaims.SessionID == "" {
			// Token carries no working session
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No working session"})
			return
		}
		sess, ok := sessions.Get(jwtClaims.SessionID) // Look up the live session
		if !ok {
			// Session was logged out or the server restarted
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, log in again"})
			return
		}
		c.Set("session", sess) // Store the session in context
		c.Next()               // Proceed to the next handler
	}
}
