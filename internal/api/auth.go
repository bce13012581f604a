package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/accounts" // Account store
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/session"  // Session manager
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils"    // Utility functions
)

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for the admin unlock
type AdminUnlockRequest struct {
	Secret string `json:"secret" binding:"required"` // Shared admin secret, not a user password
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// One denial message for unknown user, wrong password and blocked account.
// Keeping them indistinguishable is deliberate.
const deniedMessage = "Invalid username or password, or user is blocked"

// LoginHandler authenticates a user, opens a working session and returns a JWT token
func LoginHandler(store *accounts.Store, sessions *session.Manager, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Check the credentials against the account store
		if err := store.Authenticate(req.Username, req.Password); err != nil {
			// Single generic denial, no detail about which check failed
			c.JSON(http.StatusUnauthorized, gin.H{"error": deniedMessage})
			return
		}
		// Open an empty working session for this login
		sess := sessions.Create(req.Username)
		// The bootstrap admin gets the admin claim straight from login
		admin := req.Username == accounts.BootstrapUser
		// Generate JWT token
		token, err := utils.GenerateJWT(sess.ID, req.Username, admin, jwtSecret)
		if err != nil {
			// If token generation fails, drop the session and return internal server error
			sessions.Delete(sess.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log successful login
		logrus.WithFields(logrus.Fields{
			"username":   req.Username, // Account name
			"session_id": sess.ID,      // New working session
		}).Info("Login")
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// AdminUnlockHandler grants an admin token against the separately-configured
// shared secret. This path is independent of user accounts on purpose and
// must stay that way.
func AdminUnlockHandler(adminSecret, adminSecretHash, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminUnlockRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Check the shared secret
		if !utils.CheckAdminSecret(req.Secret, adminSecret, adminSecretHash) {
			// Generic denial
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin secret"})
			return
		}
		// Generate an admin token with no working session attached
		token, err := utils.GenerateJWT("", "", true, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		logrus.Info("Admin area unlocked") // Log the unlock
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// LogoutHandler drops the working session; the catalog and ledger it owned
// are gone with it.
func LogoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c) // Get the session from context
		if sess == nil {
			// Session middleware should have caught this
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessions.Delete(sess.ID) // Drop the session
		// Log the logout
		logrus.WithFields(logrus.Fields{
			"username":   sess.Username, // Account name
			"session_id": sess.ID,       // Dropped session
		}).Info("Logout")
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// sessionFromContext pulls the working session stored by SessionMiddleware.
func sessionFromContext(c *gin.Context) *session.Session {
	v, exists := c.Get("session")
	if !exists {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
