// Package ingest orchestrates full ingestion runs: scrape, score, persist,
// and record the run in the ledger.
package ingest

import (
	"context"
	"fmt"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/pipeline"
	"github.com/jobscout/jobscout/internal/portal"
)

// Runner fans a scrape out over portals. Satisfied by pipeline.Coordinator.
type Runner interface {
	Run(ctx context.Context, portals []string, relevantOnly bool) *pipeline.AggregateResult
}

// Storer persists one candidate listing. Satisfied by store.Gateway.
type Storer interface {
	Upsert(ctx context.Context, candidate domain.CandidateListing) (*domain.Listing, bool, error)
}

// Recorder keeps the run ledger. Satisfied by store.Ledger.
type Recorder interface {
	Begin(ctx context.Context, kind string, portals []string, params domain.JSONBMap) *domain.IngestionRun
	Start(ctx context.Context, run *domain.IngestionRun)
	Complete(ctx context.Context, run *domain.IngestionRun)
	Fail(ctx context.Context, run *domain.IngestionRun, message string, details domain.JSONBMap)
}

// Params describes one requested ingestion run.
type Params struct {
	// Portals to scrape. Empty means every supported portal.
	Portals []string
	// Kind tags the run in the ledger: bulk or realtime.
	Kind string
	// RelevantOnly drops listings classified as not relevant instead of
	// storing them with relevant=false.
	RelevantOnly bool
}

// Summary is the caller-facing outcome of one run.
type Summary struct {
	Run       *domain.IngestionRun
	PerPortal map[string]*pipeline.PortalResult
}

// Service executes ingestion runs end to end.
type Service struct {
	runner   Runner
	storer   Storer
	recorder Recorder
	log      logger.Interface
}

// NewService creates a Service.
func NewService(runner Runner, storer Storer, recorder Recorder, log logger.Interface) *Service {
	return &Service{runner: runner, storer: storer, recorder: recorder, log: log}
}

// Run executes one ingestion run. Portal and storage failures are isolated
// and counted; the run only fails as a whole when every portal errored and
// nothing was collected. The returned error reflects whole-run failure.
func (s *Service) Run(ctx context.Context, params Params) (*Summary, error) {
	portals := params.Portals
	if len(portals) == 0 {
		portals = portal.All()
	}
	kind := params.Kind
	if kind == "" {
		kind = domain.RunKindBulk
	}

	run := s.recorder.Begin(ctx, kind, portals, domain.JSONBMap{
		"relevant_only": params.RelevantOnly,
	})

	log := s.log.WithRunID(run.ID)
	log.Info("ingestion run starting", "kind", kind, "portals", portals)

	s.recorder.Start(ctx, run)

	agg := s.runner.Run(ctx, portals, params.RelevantOnly)

	stored, storeErrs := s.persist(ctx, log, agg)

	run.ListingsFetched = agg.TotalListings
	run.ListingsStored = stored
	run.RelevantFound = agg.RelevantListings
	run.ErrorCount = len(agg.Errors) + storeErrs

	details := errorDetails(agg, storeErrs)

	if len(agg.Errors) == len(portals) && agg.TotalListings == 0 {
		msg := "all portals failed"
		s.recorder.Fail(ctx, run, msg, details)
		log.Error("ingestion run failed", "errors", run.ErrorCount)
		return &Summary{Run: run, PerPortal: agg.PerPortal}, fmt.Errorf("ingestion run %s: %s", run.ID, msg)
	}

	run.ErrorDetails = details
	s.recorder.Complete(ctx, run)

	log.Info("ingestion run completed",
		"fetched", run.ListingsFetched,
		"stored", run.ListingsStored,
		"relevant", run.RelevantFound,
		"errors", run.ErrorCount,
		"duration", agg.Duration,
	)

	return &Summary{Run: run, PerPortal: agg.PerPortal}, nil
}

// persist pushes every collected listing through the gateway. A single
// listing failing to store does not abort the rest.
func (s *Service) persist(
	ctx context.Context,
	log logger.Interface,
	agg *pipeline.AggregateResult,
) (stored, failures int) {
	for _, pr := range agg.PerPortal {
		for _, candidate := range pr.Listings {
			if _, _, err := s.storer.Upsert(ctx, candidate); err != nil {
				failures++
				log.Warn("failed to store listing",
					"portal", candidate.Portal,
					"natural_key", candidate.NaturalKey(),
					"error", err,
				)
				continue
			}
			stored++
		}
	}
	return stored, failures
}

// errorDetails flattens per-portal errors into the ledger's JSONB shape.
func errorDetails(agg *pipeline.AggregateResult, storeErrs int) domain.JSONBMap {
	if len(agg.Errors) == 0 && storeErrs == 0 {
		return nil
	}

	details := domain.JSONBMap{}
	if storeErrs > 0 {
		details["store_failures"] = storeErrs
	}
	if len(agg.Errors) > 0 {
		portalErrs := make(map[string]string, len(agg.Errors))
		for _, pe := range agg.Errors {
			portalErrs[pe.Portal] = pe.Err.Error()
		}
		details["portals"] = portalErrs
	}
	return details
}
