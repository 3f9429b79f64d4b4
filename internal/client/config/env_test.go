package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("TASKVAULT_API_URL", "http://env.example.org")
	t.Setenv("TASKVAULT_REQUEST_TIMEOUT", "20s")
	t.Setenv("TASKVAULT_DB_PATH", "/tmp/env.db")
	t.Setenv("TASKVAULT_REGISTER_HEALTHCHECK", "false")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://env.example.org", c.APIBaseURL)
	assert.Equal(t, 20*time.Second, c.RequestTimeout)
	assert.Equal(t, "/tmp/env.db", c.DatabasePath)
	assert.False(t, c.RegisterHealthCheck)
}

func TestParseEnv_MalformedValuesAreIgnored(t *testing.T) {
	t.Setenv("TASKVAULT_REQUEST_TIMEOUT", "twenty")
	t.Setenv("TASKVAULT_REGISTER_HEALTHCHECK", "maybe")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.True(t, c.RegisterHealthCheck)
}

func TestParseEnv_UnsetKeepsDefaults(t *testing.T) {
	t.Setenv("TASKVAULT_API_URL", "")
	t.Setenv("TASKVAULT_REQUEST_TIMEOUT", "")
	t.Setenv("TASKVAULT_DB_PATH", "")
	t.Setenv("TASKVAULT_REGISTER_HEALTHCHECK", "")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, "taskvault.db", c.DatabasePath)
}
