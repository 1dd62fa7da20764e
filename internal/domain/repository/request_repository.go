package repository

import (
	"context"
	"database/sql"
	"fmt"

	"request_desk/internal/common"
	"request_desk/internal/domain/model"
)

type RequestRepository interface {
	Create(ctx context.Context, req *model.Request) error
	ListByUser(ctx context.Context, userID int) ([]model.Request, error)
	ListAll(ctx context.Context) ([]model.Request, error)
	UpdateStatus(ctx context.Context, id int, status model.RequestStatus, adminComment *string) error
}

type pgRequestRepository struct {
	db *sql.DB
}

func NewPgRequestRepository(db *sql.DB) RequestRepository {
	return &pgRequestRepository{db: db}
}

func (r *pgRequestRepository) Create(ctx context.Context, req *model.Request) error {
	query := `INSERT INTO requests (reference, title, description, category, status, requested_by)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		req.Reference, req.Title, req.Description, req.Category, req.Status, req.RequestedBy,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgRequestRepository.Create: %w", err)
	}
	return nil
}

func (r *pgRequestRepository) ListByUser(ctx context.Context, userID int) ([]model.Request, error) {
	// Newest first; id breaks ties within the same timestamp.
	query := `SELECT id, reference, title, description, category, status, admin_comment, requested_by, created_at
	          FROM requests WHERE requested_by = $1
	          ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgRequestRepository.ListByUser: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *pgRequestRepository) ListAll(ctx context.Context) ([]model.Request, error) {
	query := `SELECT id, reference, title, description, category, status, admin_comment, requested_by, created_at
	          FROM requests ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgRequestRepository.ListAll: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *pgRequestRepository) UpdateStatus(ctx context.Context, id int, status model.RequestStatus, adminComment *string) error {
	// Status and comment land in one UPDATE; concurrent admins resolve to
	// last-writer-wins at the statement boundary.
	query := `UPDATE requests SET status = $1, admin_comment = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, adminComment, id)
	if err != nil {
		return fmt.Errorf("pgRequestRepository.UpdateStatus: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgRequestRepository.UpdateStatus: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanRequests(rows *sql.Rows) ([]model.Request, error) {
	requests := []model.Request{}
	for rows.Next() {
		var req model.Request
		err := rows.Scan(
			&req.ID, &req.Reference, &req.Title, &req.Description, &req.Category,
			&req.Status, &req.AdminComment, &req.RequestedBy, &req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanRequests: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanRequests: %w", err)
	}
	return requests, nil
}
