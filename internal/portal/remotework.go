package portal

import (
	"github.com/jobscout/jobscout/internal/logger"
)

const remoteWorkBaseURL = "https://www.remotework.com"

// NewRemoteWorkAdapter creates the adapter for RemoteWork.com.
func NewRemoteWorkAdapter(log logger.Interface) Adapter {
	return &htmlAdapter{
		name:          RemoteWork,
		baseURL:       remoteWorkBaseURL,
		pagePath:      "/remote-jobs?page=%d",
		itemSelectors: []string{"div.job-listing"},
		id: []fieldStrategy{
			attr("data-job-id"),
			hrefLastSegment("a"),
		},
		title: []fieldStrategy{
			text("h3.job-name"),
			text("h3"),
			text("a"),
		},
		description: []fieldStrategy{
			text("p.job-summary"),
			text("div.description"),
			text("p"),
		},
		url: []fieldStrategy{
			findAttr("a.job-url", "href"),
			findAttr("a", "href"),
		},
		employer: []fieldStrategy{
			text("span.employer-name"),
			text("div.company"),
		},
		posted: []fieldStrategy{
			text("span.posted-on"),
			text("span.time"),
		},
		log: log,
	}
}
