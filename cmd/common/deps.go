// Package common wires shared dependencies for the CLI commands.
package common

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jobscout/jobscout/internal/config"
	"github.com/jobscout/jobscout/internal/database"
	"github.com/jobscout/jobscout/internal/ingest"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/pipeline"
	"github.com/jobscout/jobscout/internal/portal"
	"github.com/jobscout/jobscout/internal/scorer"
	"github.com/jobscout/jobscout/internal/store"
)

// Deps holds config and logger, the dependencies every command needs.
type Deps struct {
	Config *config.Config
	Logger logger.Interface
}

// New loads configuration and builds the logger.
func New() (*Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Deps{Config: cfg, Logger: log}, nil
}

// OpenDatabase connects to PostgreSQL using the configured DSN.
func (d *Deps) OpenDatabase() (*sqlx.DB, error) {
	return database.Connect(d.Config.Database.DSN())
}

// Repositories bundles the three persistence repositories.
type Repositories struct {
	Employers *database.EmployerRepository
	Listings  *database.ListingRepository
	Runs      *database.RunRepository
}

// NewRepositories builds the repositories on one connection pool.
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Employers: database.NewEmployerRepository(db),
		Listings:  database.NewListingRepository(db),
		Runs:      database.NewRunRepository(db),
	}
}

// BuildIngestService assembles the full ingestion stack: fetcher, scorer,
// coordinator, gateway, and ledger.
func (d *Deps) BuildIngestService(repos *Repositories) *ingest.Service {
	cfg := d.Config

	fetcher := portal.NewFetcher(portal.FetcherConfig{
		Timeout:   cfg.Scraper.RequestTimeout,
		UserAgent: cfg.Scraper.UserAgent,
		Referer:   cfg.Scraper.Referer,
	})

	coordinator := pipeline.NewCoordinator(
		fetcher,
		scorer.New(cfg.Scorer.Keywords),
		nil,
		pipeline.Options{
			Workers:   cfg.Scraper.Workers,
			MaxPages:  cfg.Scraper.MaxPages,
			PageDelay: cfg.Scraper.PageDelay,
		},
		d.Logger,
	)

	gateway := store.NewGateway(repos.Employers, repos.Listings, d.Logger)
	ledger := store.NewLedger(repos.Runs, d.Logger)

	return ingest.NewService(coordinator, gateway, ledger, d.Logger)
}
