package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Admin    AdminConfig
	Election ElectionConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// AdminConfig holds the admin gate configuration. PasswordHash (bcrypt)
// takes precedence over the plaintext Password when both are set.
type AdminConfig struct {
	Password     string
	PasswordHash string
}

// ElectionConfig holds election-specific settings
type ElectionConfig struct {
	// FingerprintSecret keys the voter fingerprint digest. Changing it
	// invalidates the already-voted set, so it must stay fixed for the
	// lifetime of an election.
	FingerprintSecret string

	// OpenRegistration skips the eligibility roster check when true
	OpenRegistration bool
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "5000"),
		Database: loadDatabaseConfig(appMode),
		Admin:    loadAdminConfig(appMode),
		Election: loadElectionConfig(),
	}

	if config.Admin.Password == "" && config.Admin.PasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if config.Election.FingerprintSecret == "" {
		return nil, fmt.Errorf("VOTE_FINGERPRINT_SECRET must be set")
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "nursa_ehub_election"),
	}
}

// loadAdminConfig loads the admin gate config based on mode
func loadAdminConfig(mode string) AdminConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return AdminConfig{
		Password:     getEnv(prefix+"ADMIN_PASSWORD", ""),
		PasswordHash: getEnv(prefix+"ADMIN_PASSWORD_HASH", ""),
	}
}

// loadElectionConfig loads election settings
func loadElectionConfig() ElectionConfig {
	open, _ := strconv.ParseBool(getEnv("OPEN_REGISTRATION", "true"))

	return ElectionConfig{
		FingerprintSecret: getEnv("VOTE_FINGERPRINT_SECRET", ""),
		OpenRegistration:  open,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://vote.nursa.edu"
	}
	return origins
}
