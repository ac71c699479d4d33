package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/store"
	"github.com/jobscout/jobscout/testutils"
)

func newGateway() (*store.Gateway, *testutils.FakeEmployerStore, *testutils.FakeListingStore) {
	employers := testutils.NewFakeEmployerStore()
	listings := testutils.NewFakeListingStore()
	return store.NewGateway(employers, listings, logger.NewNoOp()), employers, listings
}

func candidate() domain.CandidateListing {
	return domain.CandidateListing{
		Portal:      "guru",
		SourceID:    "12345",
		Title:       "Machine Learning Engineer",
		Description: "Build NLP pipelines",
		URL:         "https://www.guru.com/jobs/12345",
		Employer:    "Acme Inc",
		Relevant:    true,
		Score:       40,
		PostedRaw:   "2 days ago",
	}
}

func TestGatewayCreatesEmployerAndListing(t *testing.T) {
	gw, employers, listings := newGateway()

	listing, created, err := gw.Upsert(context.Background(), candidate())

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "guru_12345", listing.NaturalKey)
	assert.NotEmpty(t, listing.EmployerID)
	assert.Equal(t, 1, employers.Count())
	assert.Equal(t, 1, listings.Count())
	assert.Equal(t, "2 days ago", listing.Metadata["posted_raw"])
}

func TestGatewayIsIdempotent(t *testing.T) {
	gw, employers, listings := newGateway()
	ctx := context.Background()

	first, created, err := gw.Upsert(ctx, candidate())
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := gw.Upsert(ctx, candidate())
	require.NoError(t, err)

	assert.False(t, created, "re-ingesting the same candidate must not create a second row")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, employers.Count())
	assert.Equal(t, 1, listings.Count())
}

func TestGatewayReusesEmployerAcrossListings(t *testing.T) {
	gw, employers, _ := newGateway()
	ctx := context.Background()

	first := candidate()
	second := candidate()
	second.SourceID = "67890"
	second.Employer = " ACME   inc " // normalizes to the same key

	a, _, err := gw.Upsert(ctx, first)
	require.NoError(t, err)
	b, _, err := gw.Upsert(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, a.EmployerID, b.EmployerID)
	assert.Equal(t, 1, employers.Count())
}

func TestGatewayRecoversFromEmployerInsertRace(t *testing.T) {
	gw, employers, _ := newGateway()

	// Simulate losing the insert race: the row appears between the lookup
	// and the create, so Create hits the unique constraint.
	winner := &domain.Employer{
		ID:             "emp-winner",
		Name:           "Acme Inc",
		NormalizedName: "acme inc",
	}

	raced := &racingEmployerStore{FakeEmployerStore: employers, appear: winner}
	gw = store.NewGateway(raced, testutils.NewFakeListingStore(), logger.NewNoOp())

	listing, _, err := gw.Upsert(context.Background(), candidate())

	require.NoError(t, err)
	assert.Equal(t, "emp-winner", listing.EmployerID)
}

// racingEmployerStore makes the winner's row materialize right before the
// first Create call, forcing the unique-violation recovery path.
type racingEmployerStore struct {
	*testutils.FakeEmployerStore
	appear *domain.Employer
}

func (s *racingEmployerStore) Create(ctx context.Context, employer *domain.Employer) error {
	if s.appear != nil {
		s.Put(s.appear)
		s.appear = nil
	}
	return s.FakeEmployerStore.Create(ctx, employer)
}

func TestGatewayUnknownEmployerFallback(t *testing.T) {
	gw, employers, _ := newGateway()

	c := candidate()
	c.Employer = "   "

	listing, _, err := gw.Upsert(context.Background(), c)

	require.NoError(t, err)
	assert.NotEmpty(t, listing.EmployerID)
	assert.Equal(t, 1, employers.Count())

	resolved, err := employers.FindByNormalizedName(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownEmployer, resolved.Name)
}

func TestGatewayPropagatesListingErrors(t *testing.T) {
	employers := testutils.NewFakeEmployerStore()
	listings := testutils.NewFakeListingStore()
	listings.UpsertErr = errors.New("connection reset")
	gw := store.NewGateway(employers, listings, logger.NewNoOp())

	_, _, err := gw.Upsert(context.Background(), candidate())

	require.Error(t, err)
	assert.ErrorContains(t, err, "upsert listing")
}
