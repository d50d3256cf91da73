package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PUBLIC_URL", "")

	cfg := Load()
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "iglesia.db", cfg.DatabaseURL)
	assert.False(t, cfg.IsPostgres())
	assert.Empty(t, cfg.PublicURL)
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestLoadNormalizesPostgresScheme(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/iglesia")

	cfg := Load()
	assert.Equal(t, "postgresql://user:pass@db:5432/iglesia", cfg.DatabaseURL)
	assert.True(t, cfg.IsPostgres())
}

func TestLoadKeepsPostgresqlScheme(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://user:pass@db:5432/iglesia")

	cfg := Load()
	assert.Equal(t, "postgresql://user:pass@db:5432/iglesia", cfg.DatabaseURL)
	assert.True(t, cfg.IsPostgres())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PUBLIC_URL", "https://iglesia.example.org")

	cfg := Load()
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "https://iglesia.example.org", cfg.PublicURL)
}
