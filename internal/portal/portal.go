// Package portal implements per-portal extraction adapters for job listings.
//
// Each adapter knows how to build page URLs for its portal and how to extract
// candidate listings from the portal's raw response body. Portal markup is
// unstable and undocumented, so HTML adapters extract every field through an
// ordered list of fallback strategies and never fail a whole page on a single
// malformed item.
package portal

import (
	"errors"
	"fmt"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
)

// Portal identifiers.
const (
	Guru           = "guru"
	Truelancer     = "truelancer"
	Twine          = "twine"
	RemoteWork     = "remotework"
	WeWorkRemotely = "weworkremotely"
	RemoteOK       = "remoteok"
)

// descriptionLimit bounds stored description length.
const descriptionLimit = 400

// ErrUnknownPortal is returned when a requested portal has no adapter.
var ErrUnknownPortal = errors.New("unknown portal")

// Page is the result of extracting one fetched page.
type Page struct {
	// Listings are the candidates found on the page, in document order.
	Listings []domain.CandidateListing
	// HasNext reports whether a further page is discoverable from this one.
	HasNext bool
}

// Adapter extracts candidate listings from a single portal.
type Adapter interface {
	// Name returns the portal identifier.
	Name() string
	// PageURL returns the absolute URL for the given 1-based page number.
	PageURL(page int) string
	// Extract parses a fetched response body into candidates. Extraction
	// errors on individual items are logged and the item skipped; only a
	// document-level parse failure returns an error.
	Extract(body []byte) (*Page, error)
}

// New constructs the adapter for the given portal name.
func New(name string, log logger.Interface) (Adapter, error) {
	switch name {
	case Guru:
		return NewGuruAdapter(log), nil
	case Truelancer:
		return NewTruelancerAdapter(log), nil
	case Twine:
		return NewTwineAdapter(log), nil
	case RemoteWork:
		return NewRemoteWorkAdapter(log), nil
	case WeWorkRemotely:
		return NewWeWorkRemotelyAdapter(log), nil
	case RemoteOK:
		return NewRemoteOKAdapter(log), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPortal, name)
	}
}

// All returns every supported portal identifier.
func All() []string {
	return []string{Guru, Truelancer, Twine, RemoteWork, WeWorkRemotely, RemoteOK}
}

// IsSupported reports whether the given name has an adapter.
func IsSupported(name string) bool {
	switch name {
	case Guru, Truelancer, Twine, RemoteWork, WeWorkRemotely, RemoteOK:
		return true
	default:
		return false
	}
}
