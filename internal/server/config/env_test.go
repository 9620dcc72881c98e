package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	noDotenv(t)

	t.Setenv("NEOINBOX_HTTP_ADDRESS", "0.0.0.0:9000")
	t.Setenv("NEOINBOX_DB_DRIVER", "postgres")
	t.Setenv("NEOINBOX_DB_DSN", "postgres://x")
	t.Setenv("NEOINBOX_SESSION_MAX_AGE", "90m")
	t.Setenv("NEOINBOX_BCRYPT_COST", "11")
	t.Setenv("NEOINBOX_RELEASE", "true")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, "0.0.0.0:9000", c.HTTPAddress)
	assert.Equal(t, "postgres", c.DatabaseDriver)
	assert.Equal(t, "postgres://x", c.DatabaseDSN)
	assert.Equal(t, 90*time.Minute, c.SessionMaxAge)
	assert.Equal(t, 11, c.BcryptCost)
	assert.True(t, c.ReleaseMode)
}

func TestParseEnv_Port(t *testing.T) {
	noDotenv(t)
	t.Setenv("PORT", "8081")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))
	assert.Equal(t, ":8081", c.HTTPAddress)
}

func TestParseEnv_Dotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "NEOINBOX_LOG_LEVEL=debug\nNEOINBOX_LOG_FORMAT=text\n")

	old := dotenvFile
	dotenvFile = path
	t.Cleanup(func() { dotenvFile = old })

	// godotenv writes into the process environment and never overrides a
	// variable that is already set. Register the keys with t.Setenv so they
	// are restored afterwards, then unset them for the load.
	for _, k := range []string{"NEOINBOX_LOG_LEVEL", "NEOINBOX_LOG_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestParseEnv_BadRelease(t *testing.T) {
	noDotenv(t)
	t.Setenv("NEOINBOX_RELEASE", "sometimes")

	var c Config
	c.LoadDefaults()
	err := parseEnv(&c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEOINBOX_RELEASE")
}

func TestParseEnv_BadDuration(t *testing.T) {
	noDotenv(t)
	t.Setenv("NEOINBOX_SESSION_MAX_AGE", "forever")

	var c Config
	c.LoadDefaults()
	assert.Error(t, parseEnv(&c))
}
