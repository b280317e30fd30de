package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	App       AppConfig
	Bootstrap BootstrapConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// BootstrapConfig holds defaults for the bootstrap command. Flags given to
// cmd/bootstrap take precedence over these values.
type BootstrapConfig struct {
	AdminEmail     string
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
	SeedDefaults   bool
}

func Load() (*Config, error) {
	// A missing .env file is fine; values then come from the process environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "people_backend"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Bootstrap configuration
	seedDefaults, err := strconv.ParseBool(getEnv("BOOTSTRAP_SEED_DEFAULTS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOOTSTRAP_SEED_DEFAULTS: %w", err)
	}

	config.Bootstrap = BootstrapConfig{
		AdminEmail:     getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
		AdminFirstName: getEnv("BOOTSTRAP_ADMIN_FIRST_NAME", "System"),
		AdminLastName:  getEnv("BOOTSTRAP_ADMIN_LAST_NAME", "Administrator"),
		SeedDefaults:   seedDefaults,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
