package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig lists the environment variables the server reads. PORT is kept
// for hosting platforms that only hand out a port number.
type EnvConfig struct {
	Port           string        `env:"PORT"`
	HTTPAddress    string        `env:"NEOINBOX_HTTP_ADDRESS"`
	DatabaseDriver string        `env:"NEOINBOX_DB_DRIVER"`
	DatabaseDSN    string        `env:"NEOINBOX_DB_DSN"`
	SessionSecret  string        `env:"NEOINBOX_SESSION_SECRET"`
	SessionMaxAge  time.Duration `env:"NEOINBOX_SESSION_MAX_AGE"`
	PasswordScheme string        `env:"NEOINBOX_PASSWORD_SCHEME"`
	BcryptCost     int           `env:"NEOINBOX_BCRYPT_COST"`
	LogLevel       string        `env:"NEOINBOX_LOG_LEVEL"`
	LogFormat      string        `env:"NEOINBOX_LOG_FORMAT"`
	ReleaseMode    string        `env:"NEOINBOX_RELEASE"`
}

// dotenvFile is loaded into the process environment when present. Variables
// already set in the environment win.
var dotenvFile = ".env"

func parseEnv(config *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var e EnvConfig
	if err := env.Parse(&e); err != nil {
		return err
	}

	if e.Port != "" {
		config.HTTPAddress = ":" + e.Port
	}
	setString(&config.HTTPAddress, e.HTTPAddress)
	setString(&config.DatabaseDriver, e.DatabaseDriver)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SessionSecret, e.SessionSecret)
	setString(&config.PasswordScheme, e.PasswordScheme)
	setString(&config.LogLevel, e.LogLevel)
	setString(&config.LogFormat, e.LogFormat)

	if e.SessionMaxAge > 0 {
		config.SessionMaxAge = e.SessionMaxAge
	}
	if e.BcryptCost != 0 {
		config.BcryptCost = e.BcryptCost
	}
	if e.ReleaseMode != "" {
		release, err := strconv.ParseBool(e.ReleaseMode)
		if err != nil {
			return errors.New("NEOINBOX_RELEASE must be a boolean")
		}
		config.ReleaseMode = release
	}

	return nil
}
