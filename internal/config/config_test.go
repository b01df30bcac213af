package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
database:
  host: localhost
  port: "5432"
  user: easytrack
  name: easytrack
redis:
  host: localhost
  port: "6379"
kafka:
  brokers:
    - localhost:9092
  group_id: easytrack-tracking
routing:
  base_url: http://localhost:5000
`

// TestLoadAppliesDefaults verifies a minimal file inherits the service defaults
func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "contract_updates", cfg.Kafka.Topics.ContractUpdates)
	assert.Equal(t, "tracking_events", cfg.Kafka.Topics.TrackingEvents)
	assert.Equal(t, 15, cfg.Routing.TimeoutSeconds)
	assert.Equal(t, 60, cfg.Tracking.CooldownSeconds)
	assert.Equal(t, 15, cfg.Tracking.MapZoom)
	assert.Equal(t, 10, cfg.Tracking.MapPaddingDegreesE)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverridesFromFile(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, minimalConfig+`
tracking:
  cooldown_seconds: 30
  map_zoom: 12
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Tracking.CooldownSeconds)
	assert.Equal(t, 12, cfg.Tracking.MapZoom)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestLoadEnvOverrides verifies secrets and endpoints from the environment win
// over the file
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EASYTRACK_DB_PASSWORD", "s3cret")
	t.Setenv("EASYTRACK_OSRM_URL", "http://osrm.internal:5000")
	t.Setenv("EASYTRACK_REDIS_DB", "3")

	cfg, err := Load(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "http://osrm.internal:5000", cfg.Routing.BaseURL)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestLoadValidation verifies required fields are enforced
func TestLoadValidation(t *testing.T) {
	_, err := Load(writeConfigFile(t, `
database:
  host: localhost
redis:
  host: localhost
  port: "6379"
kafka:
  group_id: easytrack-tracking
routing:
  base_url: not-a-url
`))
	assert.ErrorContains(t, err, "invalid configuration")
}
