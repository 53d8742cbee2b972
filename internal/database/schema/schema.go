package schema

import (
	"context"
	"fmt"

	"career-connect/internal/database"
)

// Ensure creates the application tables when they do not exist yet. Every
// statement is idempotent, so running it on boot is safe.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		college TEXT NOT NULL DEFAULT '',
		graduation_year TEXT NOT NULL DEFAULT '',
		current_position TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		profile_pic TEXT NOT NULL DEFAULT '',
		skills JSONB NOT NULL DEFAULT '[]',
		target_companies JSONB NOT NULL DEFAULT '[]',
		experience JSONB NOT NULL DEFAULT '[]',
		education JSONB NOT NULL DEFAULT '[]',
		mentor_profile JSONB,
		mentee_profile JSONB,
		connections JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS mentorship_requests (
		id UUID PRIMARY KEY,
		mentor_id UUID NOT NULL,
		mentee_id UUID NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		compatibility_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS coding_questions (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		difficulty TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		input_format TEXT NOT NULL DEFAULT '',
		output_format TEXT NOT NULL DEFAULT '',
		examples JSONB NOT NULL DEFAULT '[]',
		constraints JSONB NOT NULL DEFAULT '[]',
		test_cases JSONB NOT NULL DEFAULT '[]',
		companies JSONB NOT NULL DEFAULT '[]',
		frequency TEXT NOT NULL DEFAULT '',
		hint TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_coding_questions_companies ON coding_questions USING GIN (companies)`,

	`CREATE TABLE IF NOT EXISTS code_submissions (
		id UUID PRIMARY KEY,
		student_id UUID NOT NULL,
		question_id UUID NOT NULL,
		code TEXT NOT NULL,
		language TEXT NOT NULL,
		status TEXT NOT NULL,
		test_results JSONB NOT NULL DEFAULT '[]',
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_code_submissions_student ON code_submissions (student_id, submitted_at DESC)`,

	`CREATE TABLE IF NOT EXISTS interview_prep_profiles (
		student_id UUID PRIMARY KEY,
		target_companies JSONB NOT NULL DEFAULT '[]',
		solved_questions JSONB NOT NULL DEFAULT '[]',
		attempted_questions JSONB NOT NULL DEFAULT '[]',
		failed_questions JSONB NOT NULL DEFAULT '[]',
		strong_topics JSONB NOT NULL DEFAULT '[]',
		weak_topics JSONB NOT NULL DEFAULT '[]',
		readiness_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		last_practiced TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		room_id TEXT NOT NULL,
		sender_id TEXT NOT NULL,
		message TEXT NOT NULL,
		sent_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_room ON chat_messages (room_id, sent_at)`,

	`CREATE TABLE IF NOT EXISTS ai_chat_messages (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ai_chat_messages_user ON ai_chat_messages (user_id, created_at)`,
}
