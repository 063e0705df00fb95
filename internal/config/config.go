// Package config loads the process configuration from the environment. The
// Config struct is constructed once at startup and threaded through as an
// explicit dependency; nothing in the tree reads the environment after Load
// returns.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"

	"expensetracker/internal/core"
)

type Config struct {
	// Backend selects the store implementation.
	Backend string `env:"BACKEND" envDefault:"postgres"`

	// DatabaseURL wins over the discrete PG* fields when set.
	DatabaseURL string `env:"DATABASE_URL"`
	PGHost      string `env:"PGHOST" envDefault:"localhost"`
	PGPort      int    `env:"PGPORT" envDefault:"5432"`
	PGUser      string `env:"PGUSER"`
	PGPassword  string `env:"PGPASSWORD"`
	PGDatabase  string `env:"PGDATABASE" envDefault:"expense_tracker"`

	SQLiteDBPath string `env:"SQLITE_DB_PATH" envDefault:"./data/expenses.db"`

	// Validation bounds for free-text fields.
	MaxCategoryLen    int `env:"MAX_CATEGORY_LEN" envDefault:"120"`
	MaxDescriptionLen int `env:"MAX_DESCRIPTION_LEN" envDefault:"200"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate returns an error describing every invalid field at once.
func (c *Config) Validate() error {
	var errs []string

	switch c.Backend {
	case "postgres", "sqlite", "memory":
	default:
		errs = append(errs, fmt.Sprintf("invalid backend %q: must be one of postgres, sqlite, memory", c.Backend))
	}

	if c.Backend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty when using the sqlite backend")
	}

	if c.PGPort < 1 || c.PGPort > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.PGPort))
	}

	if c.MaxCategoryLen < 1 {
		errs = append(errs, fmt.Sprintf("invalid max category length %d: must be at least 1", c.MaxCategoryLen))
	}
	if c.MaxDescriptionLen < 1 {
		errs = append(errs, fmt.Sprintf("invalid max description length %d: must be at least 1", c.MaxDescriptionLen))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// DSN assembles the Postgres connection string: DATABASE_URL when provided,
// otherwise the discrete PG* fields. PGUSER falls back to the OS user.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	user := c.PGUser
	if user == "" {
		user = os.Getenv("USER")
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.PGHost, c.PGPort),
		Path:   "/" + c.PGDatabase,
	}
	if c.PGPassword != "" {
		u.User = url.UserPassword(user, c.PGPassword)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

// Limits returns the configured record field bounds.
func (c *Config) Limits() core.Limits {
	return core.Limits{
		MaxCategoryLen:    c.MaxCategoryLen,
		MaxDescriptionLen: c.MaxDescriptionLen,
	}
}
