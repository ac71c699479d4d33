package portal

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
)

// htmlAdapter implements Adapter for HTML portals. Portal variants differ only
// in their URL scheme, item selector, and per-field strategy chains; the
// extraction loop is shared.
type htmlAdapter struct {
	name     string
	baseURL  string
	pagePath string // format string taking the 1-based page number

	// itemSelectors are tried in order; the first that matches any elements
	// wins. Listing containers move between redesigns.
	itemSelectors []string

	id          []fieldStrategy
	title       []fieldStrategy
	description []fieldStrategy
	url         []fieldStrategy
	employer    []fieldStrategy
	posted      []fieldStrategy

	// accept filters extracted candidates; nil accepts everything.
	accept func(c *domain.CandidateListing) bool

	log logger.Interface
}

// Name returns the portal identifier.
func (a *htmlAdapter) Name() string {
	return a.name
}

// PageURL returns the absolute URL for the given page number.
func (a *htmlAdapter) PageURL(page int) string {
	return a.baseURL + fmt.Sprintf(a.pagePath, page)
}

// Extract parses the page HTML and yields candidates in document order.
// A malformed item is logged and skipped; it never fails the page.
func (a *htmlAdapter) Extract(body []byte) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s page: %w", a.name, err)
	}

	items := a.findItems(doc)

	page := &Page{
		Listings: make([]domain.CandidateListing, 0, items.Length()),
		HasNext:  hasNextPage(doc),
	}

	items.Each(func(i int, s *goquery.Selection) {
		candidate, ok := a.extractItem(s)
		if !ok {
			a.log.Debug("skipping malformed listing item",
				"portal", a.name,
				"index", i,
			)
			return
		}
		page.Listings = append(page.Listings, *candidate)
	})

	return page, nil
}

// findItems returns the listing elements, trying item selectors in order.
func (a *htmlAdapter) findItems(doc *goquery.Document) *goquery.Selection {
	var items *goquery.Selection
	for _, selector := range a.itemSelectors {
		items = doc.Find(selector)
		if items.Length() > 0 {
			return items
		}
	}
	return items
}

// extractItem pulls one candidate out of a listing element. A listing without
// a title is unusable and reported as malformed.
func (a *htmlAdapter) extractItem(s *goquery.Selection) (*domain.CandidateListing, bool) {
	title := firstMatch(s, a.title...)
	if title == "" {
		return nil, false
	}

	candidate := &domain.CandidateListing{
		Portal:      a.name,
		SourceID:    firstMatch(s, a.id...),
		Title:       title,
		Description: truncate(firstMatch(s, a.description...), descriptionLimit),
		URL:         resolveURL(a.baseURL, firstMatch(s, a.url...)),
		Employer:    firstMatch(s, a.employer...),
		PostedRaw:   firstMatch(s, a.posted...),
	}

	if candidate.Employer == "" {
		candidate.Employer = domain.UnknownEmployer
	}

	if a.accept != nil && !a.accept(candidate) {
		return nil, false
	}

	return candidate, true
}
