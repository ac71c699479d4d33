package portal

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
)

const wwrBaseURL = "https://weworkremotely.com"

// wwrTitleStrategies is shared between title extraction and the employer
// heuristic, which needs the title to locate the employer in the flat text.
var wwrTitleStrategies = []fieldStrategy{
	text("h3.new-listing__header__title"),
	text("h3"),
	text("h2"),
}

// wwrStopWords terminate the employer-name scan in flat listing text.
// The employer appears right after the title, followed by badges and
// location markers.
var wwrStopWords = map[string]bool{
	"New": true, "Featured": true, "Full-Time": true, "Part-Time": true,
	"Hourly": true, "United": true, "States": true, "Anywhere": true,
	"World": true, "Remote": true,
}

// NewWeWorkRemotelyAdapter creates the adapter for WeWorkRemotely.com.
// WWR's listing cards carry the least structure of the supported portals:
// the employer is often only recoverable from flat text next to the title.
func NewWeWorkRemotelyAdapter(log logger.Interface) Adapter {
	return &htmlAdapter{
		name:     WeWorkRemotely,
		baseURL:  wwrBaseURL,
		pagePath: "/remote-jobs?page=%d",
		itemSelectors: []string{
			"li.feature",
			"div.job",
			"[data-job-id]",
		},
		id: []fieldStrategy{
			hrefLastSegment("a.listing-link--unlocked"),
			hrefLastSegment("a[href*='/remote-jobs/']"),
		},
		title: wwrTitleStrategies,
		description: []fieldStrategy{
			text("p.new-listing__header__icons__date"),
			wwrFlatText,
		},
		url: []fieldStrategy{
			findAttr("a.listing-link--unlocked", "href"),
			findAttr("a[href*='/remote-jobs/']", "href"),
		},
		employer: []fieldStrategy{
			wwrEmployerLink,
			wwrEmployerFromText,
		},
		posted: []fieldStrategy{
			text("time"),
		},
		accept: func(c *domain.CandidateListing) bool {
			// Category cards ("View all ...") share the listing markup.
			return !strings.Contains(c.Title, "View")
		},
		log: log,
	}
}

// wwrFlatText returns the card's full text as a bounded description fallback.
func wwrFlatText(s *goquery.Selection) string {
	return truncate(strings.Join(strings.Fields(s.Text()), " "), 300)
}

// wwrEmployerLink extracts the employer from a /company/ profile link, unless
// the link is the generic "View Company Profile" affordance.
func wwrEmployerLink(s *goquery.Selection) string {
	name := strings.TrimSpace(s.Find("a[href*='/company/']").First().Text())
	if strings.Contains(name, "View Company Profile") {
		return ""
	}
	return name
}

// wwrEmployerFromText recovers the employer from flat card text: the words
// between the title and the first badge or location marker.
func wwrEmployerFromText(s *goquery.Selection) string {
	title := firstMatch(s, wwrTitleStrategies...)
	if title == "" {
		return ""
	}

	flat := strings.Join(strings.Fields(s.Text()), " ")
	_, after, found := strings.Cut(flat, title)
	if !found {
		return ""
	}

	var employer []string
	for _, word := range strings.Fields(after) {
		if wwrStopWords[word] {
			break
		}
		employer = append(employer, word)
	}
	return strings.Join(employer, " ")
}
