package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Auth     AuthConfig
	Log      LogConfig
	CORS     CORSConfig
	Pipeline PipelineConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the processing history.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AuthConfig holds JWT verification settings. An empty secret disables
// authentication.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PipelineConfig holds document pipeline settings.
type PipelineConfig struct {
	BatchConcurrency int `mapstructure:"batch_concurrency"`
	MaxBatchSize     int `mapstructure:"max_batch_size"`
}

// Load reads configuration from environment variables with the TAXDOC_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "taxdoc")
	v.SetDefault("db.password", "taxdoc_secret")
	v.SetDefault("db.name", "taxdoc_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Auth defaults (empty secret = auth disabled)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "taxdoc")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Pipeline defaults
	v.SetDefault("pipeline.batch_concurrency", 8)
	v.SetDefault("pipeline.max_batch_size", 100)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "TAXDOC_SERVER_PORT",
		"server.read_timeout":        "TAXDOC_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "TAXDOC_SERVER_WRITE_TIMEOUT",
		"server.environment":         "TAXDOC_SERVER_ENVIRONMENT",
		"db.host":                    "TAXDOC_DB_HOST",
		"db.port":                    "TAXDOC_DB_PORT",
		"db.user":                    "TAXDOC_DB_USER",
		"db.password":                "TAXDOC_DB_PASSWORD",
		"db.name":                    "TAXDOC_DB_NAME",
		"db.sslmode":                 "TAXDOC_DB_SSLMODE",
		"db.max_open":                "TAXDOC_DB_MAX_OPEN",
		"db.max_idle":                "TAXDOC_DB_MAX_IDLE",
		"auth.jwt_secret":            "TAXDOC_AUTH_JWT_SECRET",
		"auth.issuer":                "TAXDOC_AUTH_ISSUER",
		"log.level":                  "TAXDOC_LOG_LEVEL",
		"log.format":                 "TAXDOC_LOG_FORMAT",
		"cors.allowed_origins":       "TAXDOC_CORS_ALLOWED_ORIGINS",
		"pipeline.batch_concurrency": "TAXDOC_PIPELINE_BATCH_CONCURRENCY",
		"pipeline.max_batch_size":    "TAXDOC_PIPELINE_MAX_BATCH_SIZE",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Comma-separated origins arrive as a single string from the env
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
