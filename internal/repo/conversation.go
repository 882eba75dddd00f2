package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// ConversationRepo defines the persistence operations for the per-trip chat
// transcript. Entries are append-only; deleting a trip cascades its log.
type ConversationRepo interface {
	// Append inserts one transcript entry and returns the persisted record
	// (with DB-generated id and created_at populated).
	Append(ctx context.Context, entry domain.ConversationEntry) (domain.ConversationEntry, error)

	// ListByTripID returns a trip's transcript in chronological order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ConversationEntry, error)
}

// pgConversationRepo is the Postgres implementation of ConversationRepo.
type pgConversationRepo struct {
	db db
}

// NewConversationRepo constructs a ConversationRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewConversationRepo(db db) ConversationRepo {
	return &pgConversationRepo{db: db}
}

func (r *pgConversationRepo) Append(ctx context.Context, entry domain.ConversationEntry) (domain.ConversationEntry, error) {
	const q = `
		INSERT INTO conversations (trip_id, role, message)
		VALUES (@trip_id, @role, @message)
		RETURNING id, trip_id, role, message, created_at`

	args := pgx.NamedArgs{
		"trip_id": entry.TripID,
		"role":    string(entry.Role),
		"message": entry.Message,
	}

	result, err := scanConversationEntry(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ConversationEntry{}, fmt.Errorf("repo.ConversationRepo.Append: %w", err)
	}
	return result, nil
}

func (r *pgConversationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ConversationEntry, error) {
	const q = `
		SELECT id, trip_id, role, message, created_at
		FROM conversations
		WHERE trip_id = @trip_id
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ConversationRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var entries []domain.ConversationEntry
	for rows.Next() {
		e, err := scanConversationEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ConversationRepo.ListByTripID: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ConversationRepo.ListByTripID: rows: %w", err)
	}

	return entries, nil
}

func scanConversationEntry(s scanner) (domain.ConversationEntry, error) {
	var (
		e      domain.ConversationEntry
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	if err := s.Scan(&id, &tripID, &e.Role, &e.Message, &e.CreatedAt); err != nil {
		return domain.ConversationEntry{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	return e, nil
}
