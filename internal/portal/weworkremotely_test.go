package portal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/portal"
)

// wwrPageHTML mirrors WeWorkRemotely's sparse listing markup: one card with a
// usable company link, one where the employer is only present in flat text,
// and one category card that must be filtered out.
const wwrPageHTML = `<!DOCTYPE html>
<html><body>
<ul>
<li class="feature">
  <a class="listing-link--unlocked" href="/remote-jobs/senior-ml-engineer-42">
    <h3 class="new-listing__header__title">Senior ML Engineer</h3>
  </a>
  <a href="/company/acme">Acme Robotics</a>
  <p class="new-listing__header__icons__date">Full-Time / Anywhere</p>
</li>
<li class="feature">
  <a href="/remote-jobs/data-scientist-17">
    <h3>Data Scientist</h3>
  </a>
  <span>Beta Analytics</span>
  <a href="/company/beta">View Company Profile</a>
  <span>Featured</span>
</li>
<li class="feature">
  <a href="/remote-jobs/categories">
    <h3>View all Programming jobs</h3>
  </a>
</li>
</ul>
</body></html>`

func TestWeWorkRemotelyAdapter_Extract(t *testing.T) {
	a := portal.NewWeWorkRemotelyAdapter(logger.NewNoOp())

	page, err := a.Extract([]byte(wwrPageHTML))
	require.NoError(t, err)

	// The "View all ..." category card is dropped.
	require.Len(t, page.Listings, 2)

	first := page.Listings[0]
	assert.Equal(t, "weworkremotely", first.Portal)
	assert.Equal(t, "senior-ml-engineer-42", first.SourceID, "ID derived from listing URL")
	assert.Equal(t, "Senior ML Engineer", first.Title)
	assert.Equal(t, "Acme Robotics", first.Employer)
	assert.Equal(t, "https://weworkremotely.com/remote-jobs/senior-ml-engineer-42", first.URL)
	assert.Equal(t, "Full-Time / Anywhere", first.Description)

	// Second card: the company link is the generic profile affordance, so the
	// employer comes from the flat text between title and the Featured badge.
	second := page.Listings[1]
	assert.Equal(t, "data-scientist-17", second.SourceID)
	assert.Equal(t, "Data Scientist", second.Title)
	assert.Equal(t, "Beta Analytics", second.Employer)
}

func TestWeWorkRemotelyAdapter_SyntheticKeyWithoutLink(t *testing.T) {
	// A card without any /remote-jobs/ link yields no native ID; the natural
	// key must still be stable across runs.
	html := `<li class="feature"><h3>Prompt Engineer</h3><span>Gamma</span></li>`

	a := portal.NewWeWorkRemotelyAdapter(logger.NewNoOp())

	page1, err := a.Extract([]byte(html))
	require.NoError(t, err)
	page2, err := a.Extract([]byte(html))
	require.NoError(t, err)

	require.Len(t, page1.Listings, 1)
	require.Len(t, page2.Listings, 1)
	assert.Empty(t, page1.Listings[0].SourceID)
	assert.Equal(t, page1.Listings[0].NaturalKey(), page2.Listings[0].NaturalKey())
	assert.Contains(t, page1.Listings[0].NaturalKey(), "weworkremotely_")
}
