package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port   string
	APIURL string // base URL used to build image links in responses

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Auth configuration
	JWTSecret            []byte
	TokenTTLMinutes      int
	ResetTokenTTLMinutes int

	// PII encryption key (32 bytes, base64 in the environment)
	PIIKey []byte

	// Image upload limit in bytes
	MaxImageBytes int

	// SMTP configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// Bootstrap admin account, seeded at startup when absent
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// Load loads configuration from environment variables. An optional .env file
// in the working directory is applied first without overriding the process
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "3000"),
		APIURL:               getEnv("API_URL", "http://localhost:3000"),
		DBType:               getEnv("DB_TYPE", "mysql"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "3306"),
		DBDatabase:           getEnv("DB_DATABASE", ""),
		DBUser:               getEnv("DB_USER", ""),
		DBPassword:           getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:    getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		TokenTTLMinutes:      getEnvAsInt("TOKEN_TTL_MINUTES", 30),
		ResetTokenTTLMinutes: getEnvAsInt("RESET_TOKEN_TTL_MINUTES", 15),
		MaxImageBytes:        getEnvAsInt("MAX_IMAGE_BYTES", 5*1024*1024),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             getEnv("SMTP_PORT", "587"),
		SMTPUser:             getEnv("SMTP_USER", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:         getEnv("SMTP_FROM_NAME", "Refugio Huellitas"),
		SMTPFromEmail:        getEnv("SMTP_FROM_EMAIL", ""),
		AdminUsername:        getEnv("ADMIN_USERNAME", ""),
		AdminPassword:        getEnv("ADMIN_PASSWORD", ""),
		AdminEmail:           getEnv("ADMIN_EMAIL", ""),
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWTSecret = []byte(secret)

	piiKey := getEnv("PII_KEY", "")
	if piiKey == "" {
		return nil, fmt.Errorf("PII_KEY is required")
	}
	key, err := base64.StdEncoding.DecodeString(piiKey)
	if err != nil {
		return nil, fmt.Errorf("PII_KEY must be base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("PII_KEY must decode to 32 bytes, got %d", len(key))
	}
	cfg.PIIKey = key

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
