package portal

import (
	"github.com/jobscout/jobscout/internal/logger"
)

const guruBaseURL = "https://www.guru.com"

// NewGuruAdapter creates the adapter for Guru.com.
// Guru renders job cards as div.job-item; class names have churned across
// redesigns, hence the fallback chains.
func NewGuruAdapter(log logger.Interface) Adapter {
	return &htmlAdapter{
		name:          Guru,
		baseURL:       guruBaseURL,
		pagePath:      "/jobs?page=%d",
		itemSelectors: []string{"div.job-item"},
		id: []fieldStrategy{
			attr("data-job-id"),
			hrefLastSegment("a"),
		},
		title: []fieldStrategy{
			text("h2.job-title"),
			text("h3"),
			text("a"),
		},
		description: []fieldStrategy{
			text("p.job-description"),
			text("div.description"),
			text("p"),
		},
		url: []fieldStrategy{
			findAttr("a.job-link", "href"),
			findAttr("a", "href"),
		},
		employer: []fieldStrategy{
			text("span.company-name"),
			text("div.company"),
			text("span"),
		},
		posted: []fieldStrategy{
			text("span.posted-time"),
			text("span.time"),
		},
		log: log,
	}
}
