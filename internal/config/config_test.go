package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noDotenv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Contact.ResetDelay)
	assert.Equal(t, "portfolio:contact:", cfg.Contact.RedisPrefix)
	assert.Empty(t, cfg.Contact.RedisAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	require.NotNil(t, cfg.Portfolio)
	assert.Equal(t, "Navjot Singh", cfg.Portfolio.Profile.Name)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("CONTACT_RESET_DELAY", "250ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.Contact.ResetDelay)
	assert.Equal(t, "localhost:6379", cfg.Contact.RedisAddr)
	assert.True(t, cfg.LogDev)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PUBLIC_DIR=/srv/public\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PUBLIC_DIR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/public", cfg.PublicDir)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero delay", key: "CONTACT_RESET_DELAY", value: "0s"},
		{name: "bad duration", key: "SHUTDOWN_TIMEOUT", value: "soon"},
		{name: "bad level", key: "LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(noDotenv(t))
			require.Error(t, err)
		})
	}
}

func TestLoadContentPath(t *testing.T) {
	t.Setenv("CONTENT_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load(noDotenv(t))
	require.Error(t, err)
}
