package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables, loading a
// .env file from the working directory first when one exists. Unset or
// malformed values leave the current configuration untouched.
//
// Recognized variables:
//
//	TASKVAULT_API_URL              base API URL
//	TASKVAULT_REQUEST_TIMEOUT     request timeout ("15s", "1m")
//	TASKVAULT_DB_PATH             local database path
//	TASKVAULT_REGISTER_HEALTHCHECK  "true"/"false"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TASKVAULT_API_URL"); v != "" {
		config.APIBaseURL = v
	}
	if v := os.Getenv("TASKVAULT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RequestTimeout = d
		}
	}
	if v := os.Getenv("TASKVAULT_DB_PATH"); v != "" {
		config.DatabasePath = v
	}
	if v := os.Getenv("TASKVAULT_REGISTER_HEALTHCHECK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.RegisterHealthCheck = b
		}
	}
}
