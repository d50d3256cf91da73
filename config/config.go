package config

import (
	"os"
	"strings"
)

type Config struct {
	AppPort string
	AppEnv  string

	SecretKey   string
	DatabaseURL string
	PublicURL   string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort: get("APP_PORT", "5000"),
		AppEnv:  get("APP_ENV", "dev"),

		SecretKey:   get("SECRET_KEY", "dev-key-very-secret-iglesia"),
		DatabaseURL: normalizeDatabaseURL(get("DATABASE_URL", "iglesia.db")),
		PublicURL:   os.Getenv("PUBLIC_URL"),
	}
}

// normalizeDatabaseURL rewrites the legacy postgres:// scheme that some
// hosting providers still hand out; the driver only accepts postgresql://.
func normalizeDatabaseURL(u string) string {
	if strings.HasPrefix(u, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(u, "postgres://")
	}
	return u
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// IsPostgres reports whether DATABASE_URL points at a Postgres server; any
// other value is treated as a SQLite file path.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgresql://")
}
