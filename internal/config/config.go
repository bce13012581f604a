package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string // Application port
	AccountsFile    string // Path to the JSON account store
	JWTSecret       string // JWT secret key
	AdminSecret     string // Admin-unlock shared secret (plaintext)
	AdminSecretHash string // Admin-unlock secret as a bcrypt hash, wins over AdminSecret
	RedisAddr       string // Redis server address, empty disables the report cache
	RedisPass       string // Redis password
	RedisDB         int    // Redis database number
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:         os.Getenv("APP_PORT"),          // Application port
		AccountsFile:    os.Getenv("ACCOUNTS_FILE"),     // Account store path
		JWTSecret:       os.Getenv("JWT_SECRET"),        // JWT secret key
		AdminSecret:     os.Getenv("ADMIN_SECRET"),      // Admin-unlock secret
		AdminSecretHash: os.Getenv("ADMIN_SECRET_HASH"), // Admin-unlock secret, bcrypt form
		RedisAddr:       os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:         redisDB,                        // Redis database number
		IsProd:          os.Getenv("IS_PROD") == "true", // Is production environment
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080" // Default port
	}
	if cfg.AccountsFile == "" {
		cfg.AccountsFile = "users.json" // Fixed path the tool has always used
	}
	if cfg.AdminSecret == "" && cfg.AdminSecretHash == "" {
		cfg.AdminSecret = "admin123" // Historical master secret, see accounts.Bootstrap
	}
	return cfg
}
