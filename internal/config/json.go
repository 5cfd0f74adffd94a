package config

import (
	"encoding/json"
	"os"
	"time"

	"sheetdash/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given as strings like "10s" and parsed with time.ParseDuration.
type jsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	SocketURL      string `json:"socket_url"`
	LocalDBPath    string `json:"local_db_path"`
	RequestTimeout string `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file path means no JSON stage. Only fields
// present in the file override; empty strings are left alone.
//
// Read or unmarshal errors panic; configuration is resolved once at
// startup and a broken config file is not recoverable.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SocketURL != "" {
		cfg.SocketURL = jc.SocketURL
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
