package config

import (
	"encoding/json"
	"os"
	"time"

	"taskvault/internal/flagx"
	"taskvault/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for the timeout so both "15s" and integer
// nanoseconds parse. After unmarshalling, its fields are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DatabasePath        string         `json:"database_path"`
	RegisterHealthCheck *bool          `json:"register_health_check"`
}

// parseJson overlays configuration from the JSON file named by the -c or
// -config flags. If neither flag is set, nothing is loaded. An unreadable
// or invalid file panics: a config file that was explicitly pointed at must
// not be half-applied.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.APIBaseURL != "" {
		config.APIBaseURL = c.APIBaseURL
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	}
	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
	if c.RegisterHealthCheck != nil {
		config.RegisterHealthCheck = *c.RegisterHealthCheck
	}
}
