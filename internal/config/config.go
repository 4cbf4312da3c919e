// Package config provides configuration management for the pitwall service.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App           AppConfig           `mapstructure:"app" validate:"required"`
	Server        ServerConfig        `mapstructure:"server" validate:"required"`
	Artifacts     ArtifactsConfig     `mapstructure:"artifacts" validate:"required"`
	Database      DatabaseConfig      `mapstructure:"database"`
	PredictionLog PredictionLogConfig `mapstructure:"prediction_log"`
	Ingestion     IngestionConfig     `mapstructure:"ingestion"`
	Metrics       MetricsConfig       `mapstructure:"metrics" validate:"required"`
	Health        HealthConfig        `mapstructure:"health" validate:"required"`
	Secrets       SecretsConfig       `mapstructure:"secrets"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// ArtifactsConfig locates the trained model artifacts
type ArtifactsConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// DatabaseConfig represents database connection configuration. Optional:
// only validated when a component that needs PostgreSQL is enabled.
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// PredictionLogConfig configures the append-only prediction log sinks
type PredictionLogConfig struct {
	CSVPath         string `mapstructure:"csv_path"`
	PostgresEnabled bool   `mapstructure:"postgres_enabled"`
}

// IngestionConfig configures the historical results fetcher
type IngestionConfig struct {
	BaseURL            string   `mapstructure:"base_url" validate:"omitempty,url"`
	Seasons            []string `mapstructure:"seasons"`
	OutputPath         string   `mapstructure:"output_path"`
	StoreEnabled       bool     `mapstructure:"store_enabled"`
	Schedule           string   `mapstructure:"schedule"`
	TimeoutSeconds     int      `mapstructure:"timeout_seconds" validate:"omitempty,gt=0"`
	RetryAttempts      int      `mapstructure:"retry_attempts" validate:"omitempty,gte=0"`
	RequestsPerSecond  float64  `mapstructure:"requests_per_second" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents the health endpoint configuration
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// SecretsConfig gates the AWS Secrets Manager overlay
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region"`
	SecretName string `mapstructure:"secret_name"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ListenAddr returns the API listen address
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// CacheTTL returns the forecast cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Server.CacheTTLSeconds) * time.Second
}

// NeedsDatabase reports whether any enabled component requires PostgreSQL
func (c *Config) NeedsDatabase() bool {
	return c.PredictionLog.PostgresEnabled || c.Ingestion.StoreEnabled
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
