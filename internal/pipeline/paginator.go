// Package pipeline drives portal adapters across pages and fans ingestion out
// over portals.
package pipeline

import (
	"context"
	"time"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/portal"
)

// PageFetcher retrieves a raw page body.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Paginator drives one adapter page-by-page, accumulating candidates.
// The loop is cooperative: it suspends only for the polite inter-page delay
// and at network I/O.
type Paginator struct {
	fetcher PageFetcher
	delay   time.Duration
	log     logger.Interface
}

// NewPaginator creates a Paginator. delay is the polite pause inserted
// between successive page requests of the same portal.
func NewPaginator(fetcher PageFetcher, delay time.Duration, log logger.Interface) *Paginator {
	return &Paginator{fetcher: fetcher, delay: delay, log: log}
}

// Collect fetches pages 1..maxPages from the adapter, stopping early when the
// most recent page advertises no further page or a page-level error occurs.
// On error the candidates collected so far are returned together with the
// error; the caller records the error without discarding partial results.
func (p *Paginator) Collect(
	ctx context.Context,
	adapter portal.Adapter,
	maxPages int,
) ([]domain.CandidateListing, error) {
	var collected []domain.CandidateListing

	for pageNum := 1; pageNum <= maxPages; pageNum++ {
		body, err := p.fetcher.Fetch(ctx, adapter.PageURL(pageNum))
		if err != nil {
			p.log.Warn("page fetch failed, stopping pagination",
				"page", pageNum,
				"error", err,
			)
			return collected, err
		}

		page, err := adapter.Extract(body)
		if err != nil {
			p.log.Warn("page extraction failed, stopping pagination",
				"page", pageNum,
				"error", err,
			)
			return collected, err
		}

		collected = append(collected, page.Listings...)

		p.log.Debug("page collected",
			"page", pageNum,
			"listings", len(page.Listings),
			"has_next", page.HasNext,
		)

		if !page.HasNext || pageNum == maxPages {
			break
		}

		if err := p.pause(ctx); err != nil {
			return collected, err
		}
	}

	return collected, nil
}

// pause sleeps for the inter-page delay, honoring context cancellation.
func (p *Paginator) pause(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
