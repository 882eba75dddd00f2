// Package repo contains all database access logic for the travel planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for saved itineraries.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
//
// The itinerary document is stored as a single jsonb snapshot. Follow-up
// mutations always rewrite the whole snapshot; there is no row-per-day or
// row-per-activity model to keep consistent.
type TripRepo interface {
	// Create persists a freshly planned itinerary under its own ID.
	Create(ctx context.Context, it domain.Itinerary) error

	// GetByID loads the full itinerary snapshot.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)

	// List returns saved-trip summaries ordered by creation time descending.
	List(ctx context.Context, page domain.PaginationParams) ([]domain.TripSummary, error)

	// Update overwrites the stored snapshot with the mutated itinerary.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, it domain.Itinerary) error

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts the itinerary snapshot. The denormalized columns exist only
// so listing does not have to unmarshal every snapshot.
func (r *pgTripRepo) Create(ctx context.Context, it domain.Itinerary) error {
	const q = `
		INSERT INTO trips (id, destination, start_date, end_date, budget_level, group_type, itinerary, created_at, updated_at)
		VALUES (@id, @destination, @start_date, @end_date, @budget_level, @group_type, @itinerary, @created_at, @updated_at)`

	doc, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Create: marshal: %w", err)
	}

	args := pgx.NamedArgs{
		"id":           it.ID,
		"destination":  it.Destination,
		"start_date":   it.Dates.StartDate,
		"end_date":     it.Dates.EndDate,
		"budget_level": string(it.BudgetLevel),
		"group_type":   string(it.GroupType),
		"itinerary":    doc,
		"created_at":   it.CreatedAt,
		"updated_at":   it.UpdatedAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return nil
}

// GetByID loads and unmarshals the stored snapshot.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	const q = `SELECT itinerary FROM trips WHERE id = @id`

	var doc []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Itinerary{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}

	var it domain.Itinerary
	if err := json.Unmarshal(doc, &it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.TripRepo.GetByID: unmarshal: %w", err)
	}
	return it, nil
}

// List returns trip summaries from the denormalized columns, newest first.
func (r *pgTripRepo) List(ctx context.Context, page domain.PaginationParams) ([]domain.TripSummary, error) {
	const q = `
		SELECT id, destination, start_date, end_date, budget_level, group_type, created_at
		FROM trips
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": page.Limit, "offset": page.Offset()})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var summaries []domain.TripSummary
	for rows.Next() {
		s, err := scanTripSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return summaries, nil
}

// Update overwrites the snapshot and the denormalized listing columns.
func (r *pgTripRepo) Update(ctx context.Context, it domain.Itinerary) error {
	const q = `
		UPDATE trips
		SET destination  = @destination,
		    start_date   = @start_date,
		    end_date     = @end_date,
		    budget_level = @budget_level,
		    group_type   = @group_type,
		    itinerary    = @itinerary,
		    updated_at   = @updated_at
		WHERE id = @id`

	doc, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Update: marshal: %w", err)
	}

	args := pgx.NamedArgs{
		"id":           it.ID,
		"destination":  it.Destination,
		"start_date":   it.Dates.StartDate,
		"end_date":     it.Dates.EndDate,
		"budget_level": string(it.BudgetLevel),
		"group_type":   string(it.GroupType),
		"itinerary":    doc,
		"updated_at":   it.UpdatedAt,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTripSummary maps a listing row into a domain.TripSummary, formatting
// dates into the wire representation.
func scanTripSummary(s scanner) (domain.TripSummary, error) {
	var (
		sum       domain.TripSummary
		id        pgtype.UUID
		start     pgtype.Date
		end       pgtype.Date
		createdAt time.Time
	)

	err := s.Scan(&id, &sum.Destination, &start, &end, &sum.BudgetLevel, &sum.GroupType, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripSummary{}, domain.ErrNotFound
		}
		return domain.TripSummary{}, err
	}

	sum.ID = uuid.UUID(id.Bytes).String()
	sum.StartDate = start.Time.Format("2006-01-02")
	sum.EndDate = end.Time.Format("2006-01-02")
	sum.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return sum, nil
}
