// Package config provides configuration management for the application.
// It handles loading, validation, and access to configuration values from
// YAML files and environment variables via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jobscout/jobscout/internal/logger"
)

// Config represents the application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logger    logger.Config   `mapstructure:"logger"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	Scraper   ScraperConfig   `mapstructure:"scraper"`
	Scorer    ScorerConfig    `mapstructure:"scorer"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ServerConfig holds HTTP server settings for the serve command.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// ScraperConfig holds settings for portal fetching and the ingestion pipeline.
type ScraperConfig struct {
	// RequestTimeout bounds each page fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// PageDelay is the polite delay between successive pages of one portal.
	PageDelay time.Duration `mapstructure:"page_delay"`
	// MaxPages caps pagination per portal.
	MaxPages int `mapstructure:"max_pages"`
	// Workers bounds concurrent portal tasks.
	Workers int `mapstructure:"workers"`
	// UserAgent identifies the client to portals.
	UserAgent string `mapstructure:"user_agent"`
	// Referer is sent with each request.
	Referer string `mapstructure:"referer"`
	// Portals is the default portal set for scheduled and unscoped runs.
	Portals []string `mapstructure:"portals"`
	// FilterRelevant drops non-relevant listings before storage.
	FilterRelevant bool `mapstructure:"filter_relevant"`
}

// ScorerConfig holds the relevance keyword vocabulary.
type ScorerConfig struct {
	Keywords []string `mapstructure:"keywords"`
}

// SchedulerConfig holds settings for the periodic scrape scheduler.
type SchedulerConfig struct {
	// Spec is a cron expression or descriptor, e.g. "@hourly".
	Spec string `mapstructure:"spec"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load reads configuration from viper into a validated Config.
// InitViper must have been called first (the root command does this).
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Scraper.Workers < 1 {
		return errors.New("scraper.workers must be at least 1")
	}
	if c.Scraper.MaxPages < 1 {
		return errors.New("scraper.max_pages must be at least 1")
	}
	if c.Scraper.RequestTimeout <= 0 {
		return errors.New("scraper.request_timeout must be positive")
	}
	if c.Scraper.PageDelay < 0 {
		return errors.New("scraper.page_delay must not be negative")
	}
	if len(c.Scorer.Keywords) == 0 {
		return errors.New("scorer.keywords must not be empty")
	}
	return nil
}

// InitViper configures viper with config file paths, environment bindings,
// and defaults. cfgFile overrides the search path when non-empty.
func InitViper(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := bindEnvVars(); err != nil {
		return err
	}

	// Config file is optional: defaults plus environment variables suffice.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// bindEnvVars maps well-known environment variables to config keys.
func bindEnvVars() error {
	bindings := map[string][]string{
		"app.environment":   {"APP_ENV"},
		"app.debug":         {"APP_DEBUG"},
		"logger.level":      {"LOG_LEVEL"},
		"logger.encoding":   {"LOG_FORMAT"},
		"database.host":     {"DATABASE_HOST"},
		"database.port":     {"DATABASE_PORT"},
		"database.user":     {"DATABASE_USER"},
		"database.password": {"DATABASE_PASSWORD"},
		"database.dbname":   {"DATABASE_NAME"},
		"database.sslmode":  {"DATABASE_SSLMODE"},
		"server.address":    {"SERVER_ADDRESS"},
	}

	for key, envs := range bindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}
