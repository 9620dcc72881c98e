package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/neoinbox/internal/flagx"
	"github.com/dmitrijs2005/neoinbox/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. It is only
// used for unmarshalling; set fields are copied into Config.
type JsonConfig struct {
	HTTPAddress    string         `json:"http_address"`
	DatabaseDriver string         `json:"database_driver"`
	DatabaseDSN    string         `json:"database_dsn"`
	SessionSecret  string         `json:"session_secret"`
	SessionMaxAge  timex.Duration `json:"session_max_age"`
	PasswordScheme string         `json:"password_scheme"`
	BcryptCost     int            `json:"bcrypt_cost"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
	ReleaseMode    *bool          `json:"release_mode"`
}

// parseJson loads the file named by -c/-config in args, if any, and copies
// every field it sets into config.
func parseJson(config *Config, args []string) error {

	jsonConfigFile := flagx.ConfigFileFlag(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setString(&config.HTTPAddress, c.HTTPAddress)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SessionSecret, c.SessionSecret)
	setString(&config.PasswordScheme, c.PasswordScheme)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)

	if c.SessionMaxAge.Duration > 0 {
		config.SessionMaxAge = c.SessionMaxAge.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.ReleaseMode != nil {
		config.ReleaseMode = *c.ReleaseMode
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
