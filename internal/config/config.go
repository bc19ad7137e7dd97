// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RemoteAPI  RemoteAPIConfig  `mapstructure:"remote_api"`
	Session    SessionConfig    `mapstructure:"session"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RemoteAPIConfig describes the paginated remote leads endpoint the sync
// engine pulls from.
type RemoteAPIConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	AuthKey        string               `mapstructure:"auth_key"`
	Timeout        int                  `mapstructure:"timeout"`
	PageSize       int                  `mapstructure:"page_size"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// SessionConfig identifies the logged-in entity on whose behalf leads are
// synced. Empty entity_id disables syncing.
type SessionConfig struct {
	EntityID string `mapstructure:"entity_id"`
}

type SchedulerConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.path", "leadbook.db")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("remote_api.timeout", 30)
	viper.SetDefault("remote_api.page_size", 10)
	viper.SetDefault("remote_api.circuit_breaker.max_requests", 3)
	viper.SetDefault("remote_api.circuit_breaker.interval", 60)
	viper.SetDefault("remote_api.circuit_breaker.timeout", 60)
	viper.SetDefault("remote_api.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("remote_api.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("scheduler.interval_minutes", 5)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// GetDSN returns the SQLite connection string. Foreign keys are enabled and
// a busy timeout keeps concurrent readers from failing fast on writer locks.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", d.Path)
}
