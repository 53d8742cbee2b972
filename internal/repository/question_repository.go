package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-connect/internal/database"
	"career-connect/internal/domain/interview"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository interface {
	InsertBatch(ctx context.Context, questions []interview.CodingQuestion) error
	GetByID(ctx context.Context, id uuid.UUID) (interview.CodingQuestion, error)
	FindFreshByCompany(ctx context.Context, company string, since time.Time, limit int) ([]interview.CodingQuestion, error)
	DeleteByCompany(ctx context.Context, company string) error
	IDsByCompany(ctx context.Context, company string) ([]string, error)
}

type PostgresQuestionRepository struct {
	db database.DB
}

func NewPostgresQuestionRepository(db database.DB) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

const questionColumns = `id, title, difficulty, category, description, input_format, output_format,
	examples, constraints, test_cases, companies, frequency, hint, created_at`

func (r *PostgresQuestionRepository) InsertBatch(ctx context.Context, questions []interview.CodingQuestion) error {
	for _, q := range questions {
		examples, err := json.Marshal(q.Examples)
		if err != nil {
			return err
		}
		constraints, err := json.Marshal(emptyIfNil(q.Constraints))
		if err != nil {
			return err
		}
		testCases, err := json.Marshal(q.TestCases)
		if err != nil {
			return err
		}
		companies, err := json.Marshal(emptyIfNil(q.Companies))
		if err != nil {
			return err
		}

		_, err = r.db.Exec(ctx,
			`INSERT INTO coding_questions (`+questionColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			q.ID, q.Title, q.Difficulty, q.Category, q.Description, q.InputFormat, q.OutputFormat,
			examples, constraints, testCases, companies, q.Frequency, q.Hint, q.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresQuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (interview.CodingQuestion, error) {
	row := r.db.QueryRow(ctx, `SELECT `+questionColumns+` FROM coding_questions WHERE id = $1`, id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return interview.CodingQuestion{}, ErrQuestionNotFound
		}
		return interview.CodingQuestion{}, err
	}
	return q, nil
}

// FindFreshByCompany returns questions tagged with the company created at or
// after the given instant, oldest first so a batch is served in insert order.
func (r *PostgresQuestionRepository) FindFreshByCompany(ctx context.Context, company string, since time.Time, limit int) ([]interview.CodingQuestion, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM coding_questions
		 WHERE companies @> to_jsonb($1::text) AND created_at >= $2
		 ORDER BY created_at ASC, title ASC
		 LIMIT $3`,
		company, since, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]interview.CodingQuestion, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresQuestionRepository) DeleteByCompany(ctx context.Context, company string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM coding_questions WHERE companies @> to_jsonb($1::text)`,
		company,
	)
	return err
}

func (r *PostgresQuestionRepository) IDsByCompany(ctx context.Context, company string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM coding_questions WHERE companies @> to_jsonb($1::text)`,
		company,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id.String())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanQuestion(row database.Row) (interview.CodingQuestion, error) {
	var q interview.CodingQuestion
	var examples, constraints, testCases, companies []byte

	err := row.Scan(
		&q.ID, &q.Title, &q.Difficulty, &q.Category, &q.Description, &q.InputFormat, &q.OutputFormat,
		&examples, &constraints, &testCases, &companies, &q.Frequency, &q.Hint, &q.CreatedAt,
	)
	if err != nil {
		return interview.CodingQuestion{}, err
	}

	if err := decodeJSON(examples, &q.Examples); err != nil {
		return interview.CodingQuestion{}, err
	}
	if err := decodeJSON(constraints, &q.Constraints); err != nil {
		return interview.CodingQuestion{}, err
	}
	if err := decodeJSON(testCases, &q.TestCases); err != nil {
		return interview.CodingQuestion{}, err
	}
	if err := decodeJSON(companies, &q.Companies); err != nil {
		return interview.CodingQuestion{}, err
	}
	return q, nil
}
