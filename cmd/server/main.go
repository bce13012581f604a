package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/accounts"   // Account store
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/api"        // API handlers
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/config"     // Configuration
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/middleware" // Middleware
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/session"    // Session manager
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils"      // Cache interface
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the account store and make sure the default admin exists
	store := accounts.NewStore(cfg.AccountsFile)
	if err := store.Bootstrap(); err != nil {
		logrus.Fatalf("failed to bootstrap account store: %v", err) // Fatal error if the store cannot be written
	}

	// Setup Redis client for the report cache; empty address runs without
	// caching. The interface stays nil when redis is off, which the cache
	// helpers treat as a permanent miss.
	var reportCache utils.Cache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		reportCache = redisClient
	} else {
		logrus.Info("REDIS_ADDR not set, report cache disabled")
	}

	// Working sessions: one per login, holding that login's catalog and ledger
	sessions := session.NewManager()

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/login", api.LoginHandler(store, sessions, cfg.JWTSecret))                              // Login endpoint
	r.POST("/admin/unlock", api.AdminUnlockHandler(cfg.AdminSecret, cfg.AdminSecretHash, cfg.JWTSecret)) // Admin unlock endpoint

	// Session routes (protected by JWT, bound to a live working session)
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.SessionMiddleware(sessions))
	apiGroup.GET("/ingredients", api.ListIngredientsHandler())           // Catalog listing endpoint
	apiGroup.POST("/ingredients", api.CreateIngredientHandler())         // Ingredient registration endpoint
	apiGroup.DELETE("/ingredients/:name", api.DeleteIngredientHandler()) // Ingredient deletion endpoint
	apiGroup.GET("/recipes", api.ListRecipesHandler())                   // Sheet listing endpoint
	apiGroup.POST("/recipes", api.CreateRecipeHandler(reportCache))      // Sheet save endpoint
	apiGroup.GET("/recipes/:id", api.GetRecipeHandler())                 // Sheet detail endpoint
	apiGroup.GET("/recipes/:id/sheet", api.SheetHandler())               // Printable sheet endpoint
	apiGroup.GET("/reports", api.ReportsHandler(reportCache))            // Report summary endpoint
	apiGroup.POST("/logout", api.LogoutHandler(sessions))                // Logout endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware())
	adminGroup.GET("/users", api.ListUsersHandler(store))                     // List users endpoint
	adminGroup.POST("/users", api.CreateUserHandler(store))                   // Create user endpoint
	adminGroup.PATCH("/users/:username/active", api.SetActiveHandler(store))  // Block/activate endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
