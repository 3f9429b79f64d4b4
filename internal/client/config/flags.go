package config

import (
	"flag"
	"os"
	"time"

	"taskvault/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base API URL (e.g., "http://localhost:8000")
//	-d string   local database path
//	-t int      request timeout, seconds
//	-k bool     probe /health before registration
//
// Args are filtered with flagx.FilterArgs first so flags owned by other
// components (such as -c/-config) do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.APIBaseURL, "a", config.APIBaseURL, "base API URL")
	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "local database path")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	fs.BoolVar(&config.RegisterHealthCheck, "k", config.RegisterHealthCheck, "probe /health before registration")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
