package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/portal"
)

// Relevance classifies a candidate listing and assigns a confidence score.
type Relevance interface {
	Score(title, description string) (relevant bool, confidence float64)
}

// AdapterFactory resolves a portal name to an adapter. Tests substitute fakes
// here; production code uses portal.New.
type AdapterFactory func(name string, log logger.Interface) (portal.Adapter, error)

// PortalResult is the outcome for a single portal in one coordinated run.
type PortalResult struct {
	Portal   string                    `json:"portal"`
	Listings []domain.CandidateListing `json:"-"`
	Fetched  int                       `json:"fetched"`
	Relevant int                       `json:"relevant"`
	Err      error                     `json:"-"`
}

// PortalError pairs a portal name with the error it produced.
type PortalError struct {
	Portal string `json:"portal"`
	Err    error  `json:"-"`
}

// AggregateResult merges per-portal outcomes of one run. A portal that failed
// still contributes an entry with zero listings, so callers always see every
// requested portal accounted for.
type AggregateResult struct {
	TotalListings    int
	RelevantListings int
	PerPortal        map[string]*PortalResult
	Errors           []PortalError
	Duration         time.Duration
}

// Options tunes a Coordinator.
type Options struct {
	Workers   int
	MaxPages  int
	PageDelay time.Duration
}

// Coordinator fans a run out over portals with a bounded number of concurrent
// workers and fans the per-portal results back into one AggregateResult.
type Coordinator struct {
	fetcher PageFetcher
	scorer  Relevance
	factory AdapterFactory
	opts    Options
	log     logger.Interface
}

// NewCoordinator creates a Coordinator. A nil factory defaults to portal.New.
func NewCoordinator(
	fetcher PageFetcher,
	scorer Relevance,
	factory AdapterFactory,
	opts Options,
	log logger.Interface,
) *Coordinator {
	if factory == nil {
		factory = func(name string, log logger.Interface) (portal.Adapter, error) {
			return portal.New(name, log)
		}
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}

	return &Coordinator{
		fetcher: fetcher,
		scorer:  scorer,
		factory: factory,
		opts:    opts,
		log:     log,
	}
}

// Run scrapes all requested portals concurrently and returns the merged
// result. Portal failures are isolated: a failing portal is recorded in
// Errors and its PerPortal entry stays empty while the others proceed.
// When relevantOnly is set, listings classified as not relevant are dropped
// from the result.
//
// If ctx expires before every worker reports, Run returns what has been
// collected so far; portals that never reported get a context error entry.
func (c *Coordinator) Run(ctx context.Context, portals []string, relevantOnly bool) *AggregateResult {
	start := time.Now()

	result := &AggregateResult{
		PerPortal: make(map[string]*PortalResult, len(portals)),
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		sem       = make(chan struct{}, c.opts.Workers)
		seen      = make(map[string]bool, len(portals))
		abandoned bool
	)

	record := func(pr *PortalResult) {
		mu.Lock()
		defer mu.Unlock()
		// Once the result is handed to the caller it is theirs alone;
		// a worker straggling past the abandoned wait must not touch it.
		if abandoned {
			return
		}
		result.PerPortal[pr.Portal] = pr
		seen[pr.Portal] = true
		if pr.Err != nil {
			result.Errors = append(result.Errors, PortalError{Portal: pr.Portal, Err: pr.Err})
		}
		result.TotalListings += pr.Fetched
		result.RelevantListings += pr.Relevant
	}

	for _, name := range portals {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				record(&PortalResult{Portal: name, Err: ctx.Err()})
				return
			}

			record(c.scrapePortal(ctx, name, relevantOnly))
		}(name)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		c.log.Warn("run abandoned before all portals reported", "error", ctx.Err())
	}

	mu.Lock()
	abandoned = true
	for _, name := range portals {
		if !seen[name] {
			result.PerPortal[name] = &PortalResult{Portal: name, Err: ctx.Err()}
			result.Errors = append(result.Errors, PortalError{Portal: name, Err: ctx.Err()})
			seen[name] = true
		}
	}
	mu.Unlock()

	result.Duration = time.Since(start)
	return result
}

// scrapePortal runs pagination and scoring for one portal.
func (c *Coordinator) scrapePortal(ctx context.Context, name string, relevantOnly bool) *PortalResult {
	pr := &PortalResult{Portal: name}
	log := c.log.WithPortal(name)

	adapter, err := c.factory(name, c.log)
	if err != nil {
		log.Error("portal adapter unavailable", "error", err)
		pr.Err = err
		return pr
	}

	paginator := NewPaginator(c.fetcher, c.opts.PageDelay, log)
	candidates, err := paginator.Collect(ctx, adapter, c.opts.MaxPages)
	pr.Err = err
	pr.Fetched = len(candidates)

	for i := range candidates {
		relevant, score := c.scorer.Score(candidates[i].Title, candidates[i].Description)
		candidates[i].Relevant = relevant
		candidates[i].Score = score
		if relevant {
			pr.Relevant++
		}
		if relevantOnly && !relevant {
			continue
		}
		pr.Listings = append(pr.Listings, candidates[i])
	}

	log.Info("portal scraped",
		"fetched", pr.Fetched,
		"relevant", pr.Relevant,
		"failed", pr.Err != nil,
	)

	return pr
}
