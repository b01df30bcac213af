package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config - root configuration of the tracking service
type Config struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Database DatabaseConfig `yaml:"database" validate:"required"`
	Redis    RedisConfig    `yaml:"redis" validate:"required"`
	Kafka    KafkaConfig    `yaml:"kafka" validate:"required"`
	Routing  RoutingConfig  `yaml:"routing" validate:"required"`
	Tracking TrackingConfig `yaml:"tracking"`
	LogLevel string         `yaml:"log_level"`
}

// ServerConfig - HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" validate:"required"`
}

// DatabaseConfig - Postgres connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     string `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Name     string `yaml:"name" validate:"required"`
	SSLMode  string `yaml:"ssl_mode"`
}

// RedisConfig - Redis connection settings
type RedisConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     string `yaml:"port" validate:"required"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig - Kafka consumer/producer settings
type KafkaConfig struct {
	Brokers         []string    `yaml:"brokers" validate:"required,min=1"`
	GroupID         string      `yaml:"group_id" validate:"required"`
	Topics          KafkaTopics `yaml:"topics"`
	MonitorInterval int         `yaml:"monitor_interval_minutes"`
	ConsumerLag     int64       `yaml:"consumer_lag_alert"`
}

// KafkaTopics - topic names used by the tracking service
type KafkaTopics struct {
	ContractUpdates string `yaml:"contract_updates"`
	TrackingEvents  string `yaml:"tracking_events"`
}

// RoutingConfig - settings of the OSRM routing backend
type RoutingConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// TrackingConfig - tuning knobs of the tracking core
type TrackingConfig struct {
	CooldownSeconds    int `yaml:"cooldown_seconds"`
	FetchTimeoutSecs   int `yaml:"fetch_timeout_seconds"`
	MapZoom            int `yaml:"map_zoom"`
	MapPaddingDegreesE int `yaml:"map_padding_millidegrees"`
}

// Load reads the YAML config at path, overlays environment variables for secrets
// and validates the result. A .env file next to the binary is picked up when present
func Load(path string) (*Config, error) {
	// .env is optional, its absence is not an error
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the configuration defaults applied before the file is read
func defaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: "8080"},
		Database: DatabaseConfig{SSLMode: "disable"},
		Kafka: KafkaConfig{
			Topics: KafkaTopics{
				ContractUpdates: "contract_updates",
				TrackingEvents:  "tracking_events",
			},
			MonitorInterval: 5,
			ConsumerLag:     1000,
		},
		Routing: RoutingConfig{TimeoutSeconds: 15},
		Tracking: TrackingConfig{
			CooldownSeconds:    60,
			FetchTimeoutSecs:   15,
			MapZoom:            15,
			MapPaddingDegreesE: 10,
		},
		LogLevel: "info",
	}
}

// applyEnvOverrides overlays secrets and connection endpoints from the environment
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EASYTRACK_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("EASYTRACK_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("EASYTRACK_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("EASYTRACK_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("EASYTRACK_OSRM_URL"); v != "" {
		cfg.Routing.BaseURL = v
	}
	if v := os.Getenv("EASYTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
