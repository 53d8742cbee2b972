package repository

import (
	"context"
	"errors"

	"career-connect/internal/database"
	"career-connect/internal/domain/mentorship"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRequestNotFound = errors.New("mentorship request not found")

type MentorshipRepository interface {
	Create(ctx context.Context, req mentorship.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (mentorship.Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]mentorship.Request, error)
}

type PostgresMentorshipRepository struct {
	db database.DB
}

func NewPostgresMentorshipRepository(db database.DB) *PostgresMentorshipRepository {
	return &PostgresMentorshipRepository{db: db}
}

func (r *PostgresMentorshipRepository) Create(ctx context.Context, req mentorship.Request) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mentorship_requests (id, mentor_id, mentee_id, status, compatibility_score, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID, req.MentorID, req.MenteeID, req.Status, req.CompatibilityScore, req.Message, req.CreatedAt,
	)
	return err
}

func (r *PostgresMentorshipRepository) GetByID(ctx context.Context, id uuid.UUID) (mentorship.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, mentor_id, mentee_id, status, compatibility_score, message, created_at
		 FROM mentorship_requests WHERE id = $1`,
		id,
	)

	var req mentorship.Request
	err := row.Scan(&req.ID, &req.MentorID, &req.MenteeID, &req.Status, &req.CompatibilityScore, &req.Message, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mentorship.Request{}, ErrRequestNotFound
		}
		return mentorship.Request{}, err
	}
	return req, nil
}

func (r *PostgresMentorshipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE mentorship_requests SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *PostgresMentorshipRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]mentorship.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, mentor_id, mentee_id, status, compatibility_score, message, created_at
		 FROM mentorship_requests
		 WHERE mentor_id = $1 OR mentee_id = $1
		 ORDER BY created_at DESC
		 LIMIT 100`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]mentorship.Request, 0)
	for rows.Next() {
		var req mentorship.Request
		if err := rows.Scan(&req.ID, &req.MentorID, &req.MenteeID, &req.Status, &req.CompatibilityScore, &req.Message, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
