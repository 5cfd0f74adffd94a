package config

import "time"

// Config holds runtime settings for the sheetdash client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - SocketURL: websocket endpoint delivering push updates.
//   - LocalDBPath: path of the local sqlite database (token + dynamic columns).
//   - RequestTimeout: per-request deadline for API calls.
type Config struct {
	APIBaseURL     string
	SocketURL      string
	LocalDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with the documented localhost defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.SocketURL = "ws://localhost:5000/ws"
	c.LocalDBPath = "sheetdash.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a JSON file (if given), environment variables, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
