package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/config"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, config.InitViper(""))

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadDefaults(t)

	assert.Equal(t, "jobscout", cfg.App.Name)
	assert.Equal(t, 4, cfg.Scraper.Workers)
	assert.Equal(t, 3, cfg.Scraper.MaxPages)
	assert.Equal(t, time.Second, cfg.Scraper.PageDelay)
	assert.Equal(t, 15*time.Second, cfg.Scraper.RequestTimeout)
	assert.True(t, cfg.Scraper.FilterRelevant)
	assert.NotEmpty(t, cfg.Scorer.Keywords, "default keyword vocabulary must be present")
	assert.Contains(t, cfg.Scorer.Keywords, "machine learning")
	assert.Contains(t, cfg.Scraper.Portals, "weworkremotely")
	assert.Equal(t, "@hourly", cfg.Scheduler.Spec)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg := loadDefaults(t)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := loadDefaults(t)

	cfg.Scraper.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = loadDefaults(t)
	cfg.Scraper.MaxPages = 0
	assert.Error(t, cfg.Validate())

	cfg = loadDefaults(t)
	cfg.Scorer.Keywords = nil
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dbCfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "scout",
		Password: "secret",
		DBName:   "jobs",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=scout password=secret dbname=jobs sslmode=disable",
		dbCfg.DSN(),
	)
}
