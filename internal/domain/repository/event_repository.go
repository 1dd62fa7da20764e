package repository

import (
	"context"
	"database/sql"
	"fmt"

	"request_desk/internal/domain/model"
)

// EventRepository covers the auxiliary entities (events, rsvps, shares).
// Only the demo seeder writes through it.
type EventRepository interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	CreateRSVP(ctx context.Context, rsvp *model.RSVP) error
	CreateShare(ctx context.Context, share *model.Share) error
}

type pgEventRepository struct {
	db *sql.DB
}

func NewPgEventRepository(db *sql.DB) EventRepository {
	return &pgEventRepository{db: db}
}

func (r *pgEventRepository) CreateEvent(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (title, description, date, created_by)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query, event.Title, event.Description, event.Date, event.CreatedBy).
		Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("pgEventRepository.CreateEvent: %w", err)
	}
	return nil
}

func (r *pgEventRepository) CreateRSVP(ctx context.Context, rsvp *model.RSVP) error {
	query := `INSERT INTO rsvps (user_id, event_id) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rsvp.UserID, rsvp.EventID).Scan(&rsvp.ID)
	if err != nil {
		return fmt.Errorf("pgEventRepository.CreateRSVP: %w", err)
	}
	return nil
}

func (r *pgEventRepository) CreateShare(ctx context.Context, share *model.Share) error {
	query := `INSERT INTO shares (user_id, event_id) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, share.UserID, share.EventID).Scan(&share.ID)
	if err != nil {
		return fmt.Errorf("pgEventRepository.CreateShare: %w", err)
	}
	return nil
}
