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

var ErrPrepProfileNotFound = errors.New("interview prep profile not found")

type PrepProfileRepository interface {
	GetByStudent(ctx context.Context, studentID uuid.UUID) (interview.PrepProfile, error)
	SetTargetCompanies(ctx context.Context, studentID uuid.UUID, companies []string) error
	RecordResult(ctx context.Context, studentID uuid.UUID, questionID uuid.UUID, category string, solved bool, practicedAt time.Time) (interview.PrepProfile, error)
	SetReadiness(ctx context.Context, studentID uuid.UUID, score float64) error
}

type PostgresPrepProfileRepository struct {
	db database.DB
}

func NewPostgresPrepProfileRepository(db database.DB) *PostgresPrepProfileRepository {
	return &PostgresPrepProfileRepository{db: db}
}

const prepColumns = `student_id, target_companies, solved_questions, attempted_questions, failed_questions,
	strong_topics, weak_topics, readiness_score, last_practiced`

func (r *PostgresPrepProfileRepository) GetByStudent(ctx context.Context, studentID uuid.UUID) (interview.PrepProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+prepColumns+` FROM interview_prep_profiles WHERE student_id = $1`,
		studentID,
	)

	p, err := scanPrepProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return interview.PrepProfile{}, ErrPrepProfileNotFound
		}
		return interview.PrepProfile{}, err
	}
	return p, nil
}

func (r *PostgresPrepProfileRepository) SetTargetCompanies(ctx context.Context, studentID uuid.UUID, companies []string) error {
	payload, err := json.Marshal(emptyIfNil(companies))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO interview_prep_profiles (student_id, target_companies)
		 VALUES ($1, $2)
		 ON CONFLICT (student_id) DO UPDATE SET target_companies = EXCLUDED.target_companies`,
		studentID, payload,
	)
	return err
}

// RecordResult applies one submission outcome as a single keyed upsert. All
// set columns use jsonb set-add: re-recording an already solved question is a
// no-op on the sets. A solve promotes the category from weak to strong; a
// failure adds it to weak. Solved ids are never removed from failed_questions
// on a later success.
func (r *PostgresPrepProfileRepository) RecordResult(ctx context.Context, studentID uuid.UUID, questionID uuid.UUID, category string, solved bool, practicedAt time.Time) (interview.PrepProfile, error) {
	query := recordFailedQuery
	if solved {
		query = recordSolvedQuery
	}

	row := r.db.QueryRow(ctx, query, studentID, questionID.String(), category, practicedAt)
	p, err := scanPrepProfile(row)
	if err != nil {
		return interview.PrepProfile{}, err
	}
	return p, nil
}

func (r *PostgresPrepProfileRepository) SetReadiness(ctx context.Context, studentID uuid.UUID, score float64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE interview_prep_profiles SET readiness_score = $2 WHERE student_id = $1`,
		studentID, score,
	)
	return err
}

const recordSolvedQuery = `
INSERT INTO interview_prep_profiles
	(student_id, attempted_questions, solved_questions, strong_topics, last_practiced)
VALUES
	($1, jsonb_build_array($2::text), jsonb_build_array($2::text), jsonb_build_array($3::text), $4)
ON CONFLICT (student_id) DO UPDATE SET
	attempted_questions = CASE
		WHEN interview_prep_profiles.attempted_questions @> to_jsonb($2::text)
		THEN interview_prep_profiles.attempted_questions
		ELSE interview_prep_profiles.attempted_questions || to_jsonb($2::text) END,
	solved_questions = CASE
		WHEN interview_prep_profiles.solved_questions @> to_jsonb($2::text)
		THEN interview_prep_profiles.solved_questions
		ELSE interview_prep_profiles.solved_questions || to_jsonb($2::text) END,
	strong_topics = CASE
		WHEN interview_prep_profiles.strong_topics @> to_jsonb($3::text)
		THEN interview_prep_profiles.strong_topics
		ELSE interview_prep_profiles.strong_topics || to_jsonb($3::text) END,
	weak_topics = (
		SELECT COALESCE(jsonb_agg(e), '[]'::jsonb)
		FROM jsonb_array_elements(interview_prep_profiles.weak_topics) e
		WHERE e <> to_jsonb($3::text)
	),
	last_practiced = $4
RETURNING ` + prepColumns

const recordFailedQuery = `
INSERT INTO interview_prep_profiles
	(student_id, attempted_questions, failed_questions, weak_topics, last_practiced)
VALUES
	($1, jsonb_build_array($2::text), jsonb_build_array($2::text), jsonb_build_array($3::text), $4)
ON CONFLICT (student_id) DO UPDATE SET
	attempted_questions = CASE
		WHEN interview_prep_profiles.attempted_questions @> to_jsonb($2::text)
		THEN interview_prep_profiles.attempted_questions
		ELSE interview_prep_profiles.attempted_questions || to_jsonb($2::text) END,
	failed_questions = CASE
		WHEN interview_prep_profiles.failed_questions @> to_jsonb($2::text)
		THEN interview_prep_profiles.failed_questions
		ELSE interview_prep_profiles.failed_questions || to_jsonb($2::text) END,
	weak_topics = CASE
		WHEN interview_prep_profiles.weak_topics @> to_jsonb($3::text)
		THEN interview_prep_profiles.weak_topics
		ELSE interview_prep_profiles.weak_topics || to_jsonb($3::text) END,
	last_practiced = $4
RETURNING ` + prepColumns

func scanPrepProfile(row database.Row) (interview.PrepProfile, error) {
	var p interview.PrepProfile
	var targets, solved, attempted, failed, strong, weak []byte
	var lastPracticed *time.Time

	err := row.Scan(
		&p.StudentID, &targets, &solved, &attempted, &failed,
		&strong, &weak, &p.ReadinessScore, &lastPracticed,
	)
	if err != nil {
		return interview.PrepProfile{}, err
	}
	p.LastPracticed = lastPracticed

	if err := decodeJSON(targets, &p.TargetCompanies); err != nil {
		return interview.PrepProfile{}, err
	}
	if err := decodeJSON(solved, &p.SolvedQuestions); err != nil {
		return interview.PrepProfile{}, err
	}
	if err := decodeJSON(attempted, &p.AttemptedQuestions); err != nil {
		return interview.PrepProfile{}, err
	}
	if err := decodeJSON(failed, &p.FailedQuestions); err != nil {
		return interview.PrepProfile{}, err
	}
	if err := decodeJSON(strong, &p.StrongTopics); err != nil {
		return interview.PrepProfile{}, err
	}
	if err := decodeJSON(weak, &p.WeakTopics); err != nil {
		return interview.PrepProfile{}, err
	}
	return p, nil
}
