package portal

import (
	"github.com/jobscout/jobscout/internal/logger"
)

const truelancerBaseURL = "https://www.truelancer.com"

// NewTruelancerAdapter creates the adapter for Truelancer.com, which lists
// freelance projects rather than salaried positions.
func NewTruelancerAdapter(log logger.Interface) Adapter {
	return &htmlAdapter{
		name:          Truelancer,
		baseURL:       truelancerBaseURL,
		pagePath:      "/projects?page=%d",
		itemSelectors: []string{"div.project-item"},
		id: []fieldStrategy{
			attr("data-project-id"),
			hrefLastSegment("a"),
		},
		title: []fieldStrategy{
			text("h3.project-title"),
			text("h3"),
			text("h2"),
			text("a"),
		},
		description: []fieldStrategy{
			text("p.project-desc"),
			text("p.description"),
			text("p"),
		},
		url: []fieldStrategy{
			findAttr("a.project-link", "href"),
			findAttr("a", "href"),
		},
		employer: []fieldStrategy{
			text("span.client-name"),
			text("span.author"),
			text("div.client"),
		},
		posted: []fieldStrategy{
			text("span.posted-time"),
			text("span.time"),
		},
		log: log,
	}
}
