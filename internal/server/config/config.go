// Package config handles configuration for the server component: defaults,
// then a JSON file, then environment variables, then command-line flags.
// Each layer only overrides what it actually sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the NeoInbox server.
//
// Fields:
//   - HTTPAddress: bind address for the web front.
//   - DatabaseDriver: "sqlite" or "postgres".
//   - DatabaseDSN: SQLite file path or PostgreSQL DSN (pgx).
//   - SessionSecret: key signing the session cookie. Do not use the default in prod.
//   - SessionMaxAge: session cookie lifetime.
//   - PasswordScheme / BcryptCost: password hashing for new accounts.
//   - LogLevel / LogFormat: slog handler settings.
//   - ReleaseMode: gin release mode and Secure cookies.
type Config struct {
	HTTPAddress    string
	DatabaseDriver string
	DatabaseDSN    string
	SessionSecret  string
	SessionMaxAge  time.Duration
	PasswordScheme string
	BcryptCost     int
	LogLevel       string
	LogFormat      string
	ReleaseMode    bool
}

// DefaultSessionSecret is only meant for local development; Validate
// rejects it in release mode.
const DefaultSessionSecret = "neoinbox-dev-session-secret-change-me"

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.HTTPAddress = ":5000"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "neoinbox.db"
	c.SessionSecret = DefaultSessionSecret
	c.SessionMaxAge = 24 * time.Hour
	c.PasswordScheme = "bcrypt"
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.ReleaseMode = false
}

// LoadConfig builds a Config from defaults overlaid with the optional JSON
// file (-c/-config), the environment and finally the command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.HTTPAddress == "" {
		return errors.New("http address is required")
	}
	if c.DatabaseDSN == "" {
		return errors.New("database dsn is required")
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("session secret must be at least 32 bytes")
	}
	if c.SessionMaxAge <= 0 {
		return errors.New("session max age must be positive")
	}
	if c.ReleaseMode && c.SessionSecret == DefaultSessionSecret {
		return errors.New("session secret must be set in release mode")
	}
	return nil
}
