package portal

import (
	"encoding/json"
	"fmt"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
)

const remoteOKAPIURL = "https://remoteok.com/api"

// remoteOKJob mirrors one record of the RemoteOK API response. The first
// record of the feed is a legal notice without id/position; such records are
// filtered out during extraction.
type remoteOKJob struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Slug        string      `json:"slug"`
	Tags        []string    `json:"tags"`
	Date        string      `json:"date"`
}

// remoteOKAdapter implements Adapter against the RemoteOK JSON API.
// The feed is a single unpaginated document, so HasNext is always false.
type remoteOKAdapter struct {
	log logger.Interface
}

// NewRemoteOKAdapter creates the adapter for RemoteOK.com.
func NewRemoteOKAdapter(log logger.Interface) Adapter {
	return &remoteOKAdapter{log: log}
}

// Name returns the portal identifier.
func (a *remoteOKAdapter) Name() string {
	return RemoteOK
}

// PageURL returns the API endpoint; RemoteOK serves the whole feed at once.
func (a *remoteOKAdapter) PageURL(page int) string {
	return remoteOKAPIURL
}

// Extract decodes the JSON feed into candidates in feed order.
func (a *remoteOKAdapter) Extract(body []byte) (*Page, error) {
	var records []remoteOKJob
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode remoteok feed: %w", err)
	}

	page := &Page{Listings: make([]domain.CandidateListing, 0, len(records))}

	for _, rec := range records {
		if rec.ID.String() == "" || rec.Position == "" {
			// Metadata record, not a job.
			continue
		}

		url := rec.URL
		if url == "" && rec.Slug != "" {
			url = fmt.Sprintf("%s/remote-jobs/%s", "https://remoteok.com", rec.Slug)
		}

		page.Listings = append(page.Listings, domain.CandidateListing{
			Portal:      RemoteOK,
			SourceID:    rec.ID.String(),
			Title:       rec.Position,
			Description: truncate(rec.Description, descriptionLimit),
			URL:         url,
			Employer:    rec.Company,
			Tags:        rec.Tags,
			PostedRaw:   rec.Date,
		})
	}

	return page, nil
}
