// Package testutils provides shared testing utilities across the application.
package testutils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/jobscout/jobscout/internal/database"
	"github.com/jobscout/jobscout/internal/domain"
)

// FakeEmployerStore is an in-memory EmployerStore that enforces the
// normalized-name unique constraint the way PostgreSQL does, including
// surfacing a unique violation on duplicate create.
type FakeEmployerStore struct {
	mu    sync.Mutex
	byKey map[string]*domain.Employer

	// FindErr and CreateErr, when set, are returned by every call.
	FindErr   error
	CreateErr error

	Creates int
}

// NewFakeEmployerStore creates an empty FakeEmployerStore.
func NewFakeEmployerStore() *FakeEmployerStore {
	return &FakeEmployerStore{byKey: make(map[string]*domain.Employer)}
}

// FindByNormalizedName mirrors EmployerRepository.FindByNormalizedName.
func (s *FakeEmployerStore) FindByNormalizedName(
	_ context.Context,
	normalizedName string,
) (*domain.Employer, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employer, ok := s.byKey[normalizedName]
	if !ok {
		return nil, fmt.Errorf("employer %q: %w", normalizedName, database.ErrNotFound)
	}
	copied := *employer
	return &copied, nil
}

// Create mirrors EmployerRepository.Create, returning a PostgreSQL unique
// violation when the normalized name is already taken.
func (s *FakeEmployerStore) Create(_ context.Context, employer *domain.Employer) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byKey[employer.NormalizedName]; exists {
		return &pq.Error{Code: "23505", Constraint: "employers_normalized_name_key"}
	}

	now := time.Now().UTC()
	employer.CreatedAt = now
	employer.UpdatedAt = now

	copied := *employer
	s.byKey[employer.NormalizedName] = &copied
	s.Creates++

	return nil
}

// Put seeds an employer directly, bypassing constraint checks.
func (s *FakeEmployerStore) Put(employer *domain.Employer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *employer
	s.byKey[employer.NormalizedName] = &copied
}

// Count returns the number of stored employers.
func (s *FakeEmployerStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}

// FakeListingStore is an in-memory ListingStore keyed by natural key with
// upsert semantics matching ListingRepository.Upsert.
type FakeListingStore struct {
	mu    sync.Mutex
	byKey map[string]*domain.Listing

	UpsertErr error
	Upserts   int
}

// NewFakeListingStore creates an empty FakeListingStore.
func NewFakeListingStore() *FakeListingStore {
	return &FakeListingStore{byKey: make(map[string]*domain.Listing)}
}

// Upsert inserts or refreshes the listing under its natural key, resolving the
// listing's ID and created_at to the existing row on conflict.
func (s *FakeListingStore) Upsert(_ context.Context, listing *domain.Listing) (bool, error) {
	if s.UpsertErr != nil {
		return false, s.UpsertErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Upserts++
	now := time.Now().UTC()

	existing, ok := s.byKey[listing.NaturalKey]
	if ok {
		listing.ID = existing.ID
		listing.EmployerID = existing.EmployerID
		listing.CreatedAt = existing.CreatedAt
		listing.UpdatedAt = now
		copied := *listing
		s.byKey[listing.NaturalKey] = &copied
		return false, nil
	}

	listing.CreatedAt = now
	listing.UpdatedAt = now
	copied := *listing
	s.byKey[listing.NaturalKey] = &copied
	return true, nil
}

// Get returns the stored listing for a natural key, or nil.
func (s *FakeListingStore) Get(naturalKey string) *domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	listing, ok := s.byKey[naturalKey]
	if !ok {
		return nil
	}
	copied := *listing
	return &copied
}

// Count returns the number of stored listings.
func (s *FakeListingStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}

// FakeRunStore is an in-memory RunStore recording every lifecycle write.
type FakeRunStore struct {
	mu   sync.Mutex
	byID map[string]*domain.IngestionRun

	CreateErr error
	UpdateErr error

	Updates int
	// Statuses records every status written, in order.
	Statuses []string
}

// NewFakeRunStore creates an empty FakeRunStore.
func NewFakeRunStore() *FakeRunStore {
	return &FakeRunStore{byID: make(map[string]*domain.IngestionRun)}
}

// Create mirrors RunRepository.Create.
func (s *FakeRunStore) Create(_ context.Context, run *domain.IngestionRun) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *run
	s.byID[run.ID] = &copied
	s.Statuses = append(s.Statuses, run.Status)

	return nil
}

// Update mirrors RunRepository.Update.
func (s *FakeRunStore) Update(_ context.Context, run *domain.IngestionRun) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[run.ID]; !ok {
		return fmt.Errorf("ingestion run %q: %w", run.ID, database.ErrNotFound)
	}

	copied := *run
	s.byID[run.ID] = &copied
	s.Updates++
	s.Statuses = append(s.Statuses, run.Status)

	return nil
}

// Get returns the stored run for an ID, or nil.
func (s *FakeRunStore) Get(id string) *domain.IngestionRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.byID[id]
	if !ok {
		return nil
	}
	copied := *run
	return &copied
}
