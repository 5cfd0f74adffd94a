package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"sheetdash"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, "ws://localhost:5000/ws", cfg.SocketURL)
	assert.Equal(t, "sheetdash.db", cfg.LocalDBPath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("SHEETDASH_API_URL", "http://env.example/api")
	t.Setenv("SHEETDASH_REQUEST_TIMEOUT", "3s")

	cfg := LoadConfig()

	assert.Equal(t, "http://env.example/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	// Untouched fields keep defaults.
	assert.Equal(t, "ws://localhost:5000/ws", cfg.SocketURL)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	withArgs(t, "-a", "http://flag.example/api", "-t", "7")
	t.Setenv("SHEETDASH_API_URL", "http://env.example/api")

	cfg := LoadConfig()

	assert.Equal(t, "http://flag.example/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://json.example/api",
		"socket_url": "ws://json.example/ws",
		"request_timeout": "30s"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "http://json.example/api", cfg.APIBaseURL)
	assert.Equal(t, "ws://json.example/ws", cfg.SocketURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "sheetdash.db", cfg.LocalDBPath)
}
