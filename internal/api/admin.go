package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/accounts" // Account store
)

// AccountAdminResponse represents the account data returned to admin.
// The password hash never leaves the store file.
type AccountAdminResponse struct {
	Username  string `json:"username"`   // Account name
	Active    bool   `json:"active"`     // Blocked accounts show as inactive
	CreatedAt string `json:"created_at"` // Creation timestamp
}

// Request struct for creating an account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for blocking or reactivating an account
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"` // Pointer so false still binds
}

// ListUsersHandler returns every account, sorted by username
func ListUsersHandler(store *accounts.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := store.List() // Load all accounts
		if err != nil {
			// Unreadable store surfaces to the admin as empty with a warning log
			logrus.Warnf("listing users with unreadable store: %v", err)
			all = nil
		}
		// Map accounts to the response format
		resp := make([]AccountAdminResponse, len(all))
		for i, a := range all {
			resp[i] = AccountAdminResponse{
				Username:  a.Username,  // Account name
				Active:    a.Active,    // Active flag
				CreatedAt: a.CreatedAt, // Creation timestamp
			}
		}
		// Return the account list
		c.JSON(http.StatusOK, gin.H{"users": resp, "total": len(resp)})
	}
}

// CreateUserHandler creates a new active account
func CreateUserHandler(store *accounts.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Attempt to create the account
		acct, err := store.Create(req.Username, req.Password)
		if errors.Is(err, accounts.ErrAccountExists) {
			// Duplicate usernames are rejected with no state change
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Requested username
				"error":    err.Error(),  // Error message
			}).Error("Failed to create user")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"username": acct.Username, // New account name
		}).Info("User created")
		// Return the new account without the password hash
		c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": AccountAdminResponse{
			Username:  acct.Username,
			Active:    acct.Active,
			CreatedAt: acct.CreatedAt,
		}})
	}
}

// SetActiveHandler blocks or reactivates an account. The bootstrap admin is
// refused; it is always active.
func SetActiveHandler(store *accounts.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username") // Account name from the URL
		var req SetActiveRequest        // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Attempt to flip the flag
		err := store.SetActive(username, *req.Active)
		if errors.Is(err, accounts.ErrAdminImmutable) {
			// The admin account cannot be blocked
			c.JSON(http.StatusForbidden, gin.H{"error": "The admin account cannot be changed"})
			return
		}
		if errors.Is(err, accounts.ErrAccountUnknown) {
			// Unknown username
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"username": username,    // Account name
				"error":    err.Error(), // Error message
			}).Error("Failed to update user")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		// Log the change
		logrus.WithFields(logrus.Fields{
			"username": username,    // Account name
			"active":   *req.Active, // New flag
		}).Info("User active flag updated")
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}
