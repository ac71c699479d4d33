package portal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/portal"
)

// remoteOKFeed mirrors the RemoteOK API shape: a leading legal-notice record
// followed by job records.
const remoteOKFeed = `[
  {"legal": "API terms of use"},
  {
    "id": 100001,
    "position": "Machine Learning Engineer",
    "company": "Acme Inc",
    "description": "Build ML systems with pytorch.",
    "slug": "100001-machine-learning-engineer",
    "tags": ["python", "pytorch", "ml"],
    "date": "2025-08-30T12:00:00+00:00"
  },
  {
    "id": 100002,
    "position": "Backend Developer",
    "company": "Beta LLC",
    "description": "Go services.",
    "url": "https://remoteok.com/remote-jobs/100002-backend-developer",
    "tags": ["golang"]
  }
]`

func TestRemoteOKAdapter_Extract(t *testing.T) {
	a := portal.NewRemoteOKAdapter(logger.NewNoOp())

	page, err := a.Extract([]byte(remoteOKFeed))
	require.NoError(t, err)

	// The legal-notice record is not a job.
	require.Len(t, page.Listings, 2)
	assert.False(t, page.HasNext, "remoteok serves the whole feed in one page")

	first := page.Listings[0]
	assert.Equal(t, "remoteok", first.Portal)
	assert.Equal(t, "100001", first.SourceID)
	assert.Equal(t, "Machine Learning Engineer", first.Title)
	assert.Equal(t, "Acme Inc", first.Employer)
	assert.Equal(t, []string{"python", "pytorch", "ml"}, first.Tags)
	assert.Equal(t, "https://remoteok.com/remote-jobs/100001-machine-learning-engineer", first.URL,
		"URL built from slug when absent")

	second := page.Listings[1]
	assert.Equal(t, "https://remoteok.com/remote-jobs/100002-backend-developer", second.URL)
}

func TestRemoteOKAdapter_MalformedFeed(t *testing.T) {
	a := portal.NewRemoteOKAdapter(logger.NewNoOp())

	_, err := a.Extract([]byte("<html>not json</html>"))
	assert.Error(t, err)
}

func TestRemoteOKAdapter_PageURL(t *testing.T) {
	a := portal.NewRemoteOKAdapter(logger.NewNoOp())
	assert.Equal(t, "https://remoteok.com/api", a.PageURL(1))
	assert.Equal(t, "https://remoteok.com/api", a.PageURL(2), "feed has no pages")
}

func TestNew_KnownAndUnknownPortals(t *testing.T) {
	log := logger.NewNoOp()

	for _, name := range portal.All() {
		a, err := portal.New(name, log)
		require.NoError(t, err, "portal %s", name)
		assert.Equal(t, name, a.Name())
	}

	_, err := portal.New("linkedin", log)
	assert.ErrorIs(t, err, portal.ErrUnknownPortal)

	assert.True(t, portal.IsSupported("guru"))
	assert.False(t, portal.IsSupported("linkedin"))
}
