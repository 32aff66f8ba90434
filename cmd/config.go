package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/tookanclient"
	"fleet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPPort       string `mapstructure:"HTTP_PORT"`
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	// TookanAPIKey authenticates inbound Tookan payloads and outbound calls.
	// Empty disables the inbound key check and the order export.
	TookanAPIKey        string        `mapstructure:"TOOKAN_API_KEY"`
	TookanBaseURL       string        `mapstructure:"TOOKAN_BASE_URL"`
	TookanTimeout       time.Duration `mapstructure:"TOOKAN_TIMEOUT"`
	TookanMaxRetries    int           `mapstructure:"TOOKAN_MAX_RETRIES"`
	TookanRetryInterval time.Duration `mapstructure:"TOOKAN_RETRY_INTERVAL"`

	AlertQueueSize    int           `mapstructure:"ALERT_QUEUE_SIZE"`
	AlertSinkTimeout  time.Duration `mapstructure:"ALERT_SINK_TIMEOUT"`
	ZoneSweepSchedule string        `mapstructure:"ZONE_SWEEP_SCHEDULE"`

	LogFormat string `mapstructure:"LOG_FORMAT"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"HTTP_PORT":             "8080",
	"STORAGE_BACKEND":       BackendMemory,
	"DB_HOST":               "localhost",
	"DB_PORT":               "5432",
	"DB_USER":               "postgres",
	"DB_PASSWORD":           "",
	"DB_NAME":               "fleet",
	"DB_SSLMODE":            "disable",
	"TOOKAN_API_KEY":        "",
	"TOOKAN_BASE_URL":       tookanclient.DefaultBaseURL,
	"TOOKAN_TIMEOUT":        tookanclient.DefaultTimeout,
	"TOOKAN_MAX_RETRIES":    tookanclient.DefaultMaxAttempts,
	"TOOKAN_RETRY_INTERVAL": tookanclient.DefaultInitialInterval,
	"ALERT_QUEUE_SIZE":      256,
	"ALERT_SINK_TIMEOUT":    5 * time.Second,
	"ZONE_SWEEP_SCHEDULE":   jobs.DefaultZoneSweepSchedule,
	"LOG_FORMAT":            "json",
	"LOG_LEVEL":             "info",
}

// LoadConfig reads the optional dotenv file at envFile into the process
// environment and builds the Config from environment variables over the
// defaults. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var problems []error
	switch c.StorageBackend {
	case BackendMemory, BackendPostgres:
	default:
		problems = append(problems, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q",
			BackendMemory, BackendPostgres, c.StorageBackend))
	}
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is required"))
	}
	if c.AlertQueueSize <= 0 {
		problems = append(problems, fmt.Errorf("ALERT_QUEUE_SIZE must be positive, got %d", c.AlertQueueSize))
	}
	if c.TookanMaxRetries <= 0 {
		problems = append(problems, fmt.Errorf("TOOKAN_MAX_RETRIES must be positive, got %d", c.TookanMaxRetries))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		problems = append(problems, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}
	return errors.Join(problems...)
}

// Connection returns the PostgreSQL connection parameters.
func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

// Tookan returns the outbound client settings.
func (c Config) Tookan() tookanclient.Config {
	return tookanclient.Config{
		BaseURL:         c.TookanBaseURL,
		APIKey:          c.TookanAPIKey,
		Timeout:         c.TookanTimeout,
		MaxAttempts:     c.TookanMaxRetries,
		InitialInterval: c.TookanRetryInterval,
	}
}
