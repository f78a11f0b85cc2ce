package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "accounts")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg := Load()
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "db.internal", cfg.DBHost)
	require.Equal(t, "accounts", cfg.DBName)
	require.NoError(t, cfg.Validate())
}

func TestValidateRequiresSessionSecret(t *testing.T) {
	cfg := &Config{}
	require.ErrorIs(t, cfg.Validate(), ErrMissingSessionSecret)
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "pw",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "users",
		DBSSLMode:  "require",
	}
	require.Equal(t, "postgres://app:pw@db:5433/users?sslmode=require", cfg.DatabaseURL())
}
