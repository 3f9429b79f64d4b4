// Package config handles configuration for the TaskVault client, including
// defaults, environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the TaskVault client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - RequestTimeout: total wait bound for one outbound request.
//   - DatabasePath: path of the local SQLite database holding the token.
//   - RegisterHealthCheck: probe /health before registration so an
//     unreachable server produces a clearer error.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	DatabasePath        string
	RegisterHealthCheck bool
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "taskvault.db"
	c.RegisterHealthCheck = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
