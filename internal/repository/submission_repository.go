package repository

import (
	"context"
	"encoding/json"

	"career-connect/internal/database"
	"career-connect/internal/domain/interview"

	"github.com/google/uuid"
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub interview.CodeSubmission) error
	ListRecentByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]interview.CodeSubmission, error)
}

type PostgresSubmissionRepository struct {
	db database.DB
}

func NewPostgresSubmissionRepository(db database.DB) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{db: db}
}

func (r *PostgresSubmissionRepository) Create(ctx context.Context, sub interview.CodeSubmission) error {
	results, err := json.Marshal(sub.TestResults)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO code_submissions (id, student_id, question_id, code, language, status, test_results, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sub.ID, sub.StudentID, sub.QuestionID, sub.Code, sub.Language, sub.Status, results, sub.SubmittedAt,
	)
	return err
}

func (r *PostgresSubmissionRepository) ListRecentByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]interview.CodeSubmission, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, student_id, question_id, code, language, status, test_results, submitted_at
		 FROM code_submissions
		 WHERE student_id = $1
		 ORDER BY submitted_at DESC
		 LIMIT $2`,
		studentID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]interview.CodeSubmission, 0)
	for rows.Next() {
		var sub interview.CodeSubmission
		var results []byte
		if err := rows.Scan(&sub.ID, &sub.StudentID, &sub.QuestionID, &sub.Code, &sub.Language, &sub.Status, &results, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		if err := decodeJSON(results, &sub.TestResults); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
