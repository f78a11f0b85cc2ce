package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingSessionSecret is returned by Validate when SESSION_SECRET is unset.
var ErrMissingSessionSecret = fmt.Errorf("SESSION_SECRET is required")

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SessionSecret string
	LogLevel      string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present. Callers that serve traffic should
// also run Validate; the admin CLIs only need the DB_* settings.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "authhub"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the settings the HTTP server cannot run without.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return ErrMissingSessionSecret
	}
	return nil
}

// DatabaseURL builds the Postgres connection string from the DB_* parts.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
