package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:",squash"`
	Database  DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	Cache     CacheConfig     `mapstructure:",squash"`
	Scheduler SchedulerConfig `mapstructure:",squash"`
	Logging   LoggingConfig   `mapstructure:",squash"`
	Health    HealthConfig    `mapstructure:",squash"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"SERVER_PORT"`
	Host         string        `mapstructure:"SERVER_HOST"`
	Env          string        `mapstructure:"ENV"`
	ReadTimeout  time.Duration `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int           `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"CACHE_TTL"`
}

type SchedulerConfig struct {
	Spec     string `mapstructure:"SCHEDULER_SPEC"`
	Timezone string `mapstructure:"SCHEDULER_TIMEZONE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type HealthConfig struct {
	Timeout time.Duration `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_PORT":                "8080",
	"SERVER_HOST":                "0.0.0.0",
	"ENV":                        "development",
	"SERVER_READ_TIMEOUT":        "15s",
	"SERVER_WRITE_TIMEOUT":       "30s",
	"DATABASE_URL":               "",
	"DATABASE_MAX_OPEN_CONNS":    10,
	"DATABASE_MAX_IDLE_CONNS":    5,
	"DATABASE_CONN_MAX_LIFETIME": "30m",
	"REDIS_ADDR":                 "localhost:6379",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"CACHE_TTL":                  "10m",
	"SCHEDULER_SPEC":             "@every 6h",
	"SCHEDULER_TIMEZONE":         "Asia/Jakarta",
	"LOG_LEVEL":                  "info",
	"LOG_FORMAT":                 "json",
	"HEALTH_CHECK_TIMEOUT":       "5s",
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Values already in the environment win over the .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to read .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be greater than 0")
	}

	if c.Scheduler.Spec == "" {
		return fmt.Errorf("SCHEDULER_SPEC is required")
	}

	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("SCHEDULER_TIMEZONE must be a valid IANA zone: %w", err)
	}

	if c.Health.Timeout <= 0 {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be greater than 0")
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// SchedulerLocation returns the scheduler time zone, UTC if it cannot be loaded
func (c *Config) SchedulerLocation() *time.Location {
	loc, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
