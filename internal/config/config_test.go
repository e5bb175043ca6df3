package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from yaml file", func(t *testing.T) {
		// Given: a config file with every key set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhttp-port: \"8081\"\nredis:\n  host: cache\n  port: \"6380\"\nrecords-seed-path: ./seed.json\nshutdown-timeout: 2s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: every field is populated from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "./seed.json", conf.RecordsSeedPath)
		assert.Equal(t, 2*time.Second, conf.ShutdownTimeout)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: an empty config file
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: defaults are applied
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 5*time.Second, conf.ShutdownTimeout)
	})

	t.Run("Panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
