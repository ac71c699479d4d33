package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jobscout/jobscout/internal/database"
	"github.com/jobscout/jobscout/internal/domain"
)

func TestRunRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := database.NewRunRepository(db)

	mock.ExpectQuery("INSERT INTO ingestion_runs").
		WithArgs("run-1", domain.RunKindBulk, domain.RunStatusPending, "guru,twine", sqlmock.AnyArg()).
		WillReturnRows(
			sqlmock.NewRows([]string{"started_at"}).AddRow(time.Now()),
		)

	run := &domain.IngestionRun{
		ID:      "run-1",
		Kind:    domain.RunKindBulk,
		Status:  domain.RunStatusPending,
		Portals: "guru,twine",
	}

	if err := repo.Create(context.Background(), run); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if run.StartedAt.IsZero() {
		t.Error("expected StartedAt populated from database")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestRunRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := database.NewRunRepository(db)

	completed := time.Now()
	duration := int64(4200)
	run := &domain.IngestionRun{
		ID:              "run-1",
		Status:          domain.RunStatusCompleted,
		ListingsFetched: 42,
		ListingsStored:  40,
		RelevantFound:   12,
		CompletedAt:     &completed,
		DurationMs:      &duration,
	}

	mock.ExpectExec("UPDATE ingestion_runs").
		WithArgs(
			domain.RunStatusCompleted, 42, 40, 12, 0,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "run-1",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), run); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestRunRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := database.NewRunRepository(db)

	mock.ExpectExec("UPDATE ingestion_runs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.IngestionRun{ID: "missing"})
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := database.NewRunRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM ingestion_runs").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
