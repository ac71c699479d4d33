package portal

import (
	"github.com/jobscout/jobscout/internal/logger"
)

const twineBaseURL = "https://www.twine.com"

// NewTwineAdapter creates the adapter for Twine.com.
func NewTwineAdapter(log logger.Interface) Adapter {
	return &htmlAdapter{
		name:          Twine,
		baseURL:       twineBaseURL,
		pagePath:      "/jobs?page=%d",
		itemSelectors: []string{"div.job-card"},
		id: []fieldStrategy{
			attr("data-job-id"),
			hrefLastSegment("a"),
		},
		title: []fieldStrategy{
			text("h4.job-title"),
			text("h4"),
			text("h3"),
			text("a"),
		},
		description: []fieldStrategy{
			text("p.job-description"),
			text("div.description"),
			text("p"),
		},
		url: []fieldStrategy{
			findAttr("a.job-url", "href"),
			findAttr("a", "href"),
		},
		employer: []fieldStrategy{
			text("span.company-name"),
			text("div.company"),
		},
		posted: []fieldStrategy{
			text("span.post-date"),
			text("span.time"),
		},
		log: log,
	}
}
