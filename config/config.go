package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTKey is the insecure fallback signing secret used when JWT_SECRET_KEY is unset.
const DefaultJWTKey = "defaultSecret"

// Config holds application configuration
type Config struct {
	Env  string
	Port string

	DBDriver    string
	DatabaseURL string // data-store URL or DSN
	DatabaseKey string // data-store access key
	DBLogLevel  string

	JWTKey    string
	TokenTTL  time.Duration
	SaltRound int

	CORSOrigins string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Env:  strings.ToLower(getEnv("APP_ENV", "development")),
		Port: getEnv("PORT", "5000"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DatabaseKey: getEnv("DATABASE_KEY", ""),
		DBLogLevel:  getEnv("DB_LOG_LEVEL", "warn"),

		JWTKey:    getEnv("JWT_SECRET_KEY", DefaultJWTKey),
		TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_HOURS", 30*24)) * time.Hour,
		SaltRound: getEnvInt("SALT_ROUND", 10),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}

	return cfg
}

// Warnings lists configuration values that are unsafe to run with in production.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.JWTKey == DefaultJWTKey {
		warnings = append(warnings, "using default JWT_SECRET_KEY, update it in your environment")
	}
	if c.DatabaseURL == "" && c.DBDriver != "sqlite" {
		warnings = append(warnings, "DATABASE_URL is empty")
	}
	return warnings
}

// IsProduction reports whether the service runs with production logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
