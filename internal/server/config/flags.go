package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/neoinbox/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-D string   database driver: sqlite or postgres
//	-d string   database DSN (SQLite path or PostgreSQL URL)
//	-s string   session cookie secret
//	-m int      session max age, minutes
//	-p string   password scheme: bcrypt or argon2id
//	-k int      bcrypt cost
//	-l string   log level
//	-release    release mode
//
// args are filtered with flagx.FilterArgs first so flags owned by other
// loaders (-c) do not trip this FlagSet.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-D", "-d", "-s", "-m", "-p", "-k", "-l", "-release"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddress, "a", config.HTTPAddress, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret")
	sessionMaxAge := fs.Int("m", int(config.SessionMaxAge.Minutes()), "session max age (in minutes)")
	fs.StringVar(&config.PasswordScheme, "p", config.PasswordScheme, "password scheme (bcrypt|argon2id)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.ReleaseMode, "release", config.ReleaseMode, "release mode")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -m only overrides when given; earlier layers may hold sub-minute values.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "m" {
			config.SessionMaxAge = time.Duration(*sessionMaxAge) * time.Minute
		}
	})
	return nil
}
