package config

import (
	"flag"
	"os"
	"time"

	"sheetdash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST API
//	-s string   websocket endpoint for push updates
//	-d string   path of the local sqlite database
//	-t int      request timeout in seconds
//
// The function filters os.Args down to the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend REST API")
	fs.StringVar(&cfg.SocketURL, "s", cfg.SocketURL, "websocket endpoint for push updates")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path of the local database file")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
