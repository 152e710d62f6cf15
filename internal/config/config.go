package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	Database DatabaseConfig

	// Report rendering configuration
	Report ReportConfig

	// Logging configuration
	Log LogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string        `env:"DB_HOST" envDefault:"localhost"`
	Port         string        `env:"DB_PORT" envDefault:"5432"`
	User         string        `env:"DB_USER" envDefault:"postgres"`
	Password     string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name         string        `env:"DB_NAME" envDefault:"item_reports"`
	SSLMode      string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	MaxLifetime  time.Duration `env:"DB_MAX_LIFETIME" envDefault:"5m"`
}

// ReportConfig holds the thresholds used by the visibility policies
type ReportConfig struct {
	PriorityThreshold float64 `env:"REPORT_PRIORITY_THRESHOLD" envDefault:"1000"` // ADMIN rows above this are bold
	UserValueLimit    float64 `env:"REPORT_USER_VALUE_LIMIT" envDefault:"500"`    // USER sees values up to and including this
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "pretty"
}

// DefaultReportConfig returns the thresholds used when nothing is configured
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		PriorityThreshold: 1000,
		UserValueLimit:    500,
	}
}

// Load reads configuration from environment variables, after applying an
// optional .env file from the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return ErrMissingDatabaseHost
	}
	if c.Database.Name == "" {
		return ErrMissingDatabaseName
	}
	return c.Report.Validate()
}

// Validate checks the report thresholds
func (r ReportConfig) Validate() error {
	if r.PriorityThreshold < 0 {
		return ErrInvalidPriorityThreshold
	}
	if r.UserValueLimit < 0 {
		return ErrInvalidUserValueLimit
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}
