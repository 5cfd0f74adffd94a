package config

import (
	"os"
	"time"
)

const (
	apiBaseURLEnvName     = "SHEETDASH_API_URL"
	socketURLEnvName      = "SHEETDASH_SOCKET_URL"
	localDBPathEnvName    = "SHEETDASH_DB"
	requestTimeoutEnvName = "SHEETDASH_REQUEST_TIMEOUT"
)

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the current value alone; an unparseable timeout is ignored rather
// than aborting startup.
func parseEnv(cfg *Config) {
	if v := os.Getenv(apiBaseURLEnvName); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(socketURLEnvName); v != "" {
		cfg.SocketURL = v
	}
	if v := os.Getenv(localDBPathEnvName); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv(requestTimeoutEnvName); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
