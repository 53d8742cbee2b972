package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-connect/internal/database"
	"career-connect/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

// MentorFilter narrows the mentor listing. Zero values mean "no filter".
type MentorFilter struct {
	Expertise []string
	Available *bool
}

type UserRepository interface {
	Create(ctx context.Context, u user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Update(ctx context.Context, u user.User) error
	List(ctx context.Context, role string, limit int) ([]user.User, error)
	FindMentors(ctx context.Context, f MentorFilter) ([]user.User, error)
	FindAvailableMentors(ctx context.Context, excludeID uuid.UUID) ([]user.User, error)
	AddConnection(ctx context.Context, userID uuid.UUID, connectionID uuid.UUID) error
	SetTargetCompanies(ctx context.Context, userID uuid.UUID, companies []string) error
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, name, role, college, graduation_year, current_position, bio, location, profile_pic,
	skills, target_companies, experience, education, mentor_profile, mentee_profile, connections,
	created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	skills, targets, exp, edu, conns, mentorP, menteeP, err := encodeUserJSON(u)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		u.ID, u.Email, u.Name, u.Role, u.College, u.GraduationYear, u.CurrentRole, u.Bio, u.Location, u.ProfilePic,
		skills, targets, exp, edu, mentorP, menteeP, conns,
		u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	skills, targets, exp, edu, conns, mentorP, menteeP, err := encodeUserJSON(u)
	if err != nil {
		return err
	}

	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users SET
			name = $2, college = $3, graduation_year = $4, current_position = $5, bio = $6,
			location = $7, profile_pic = $8, skills = $9, target_companies = $10,
			experience = $11, education = $12, mentor_profile = $13, mentee_profile = $14,
			connections = $15, updated_at = $16
		 WHERE id = $1`,
		u.ID, u.Name, u.College, u.GraduationYear, u.CurrentRole, u.Bio,
		u.Location, u.ProfilePic, skills, targets,
		exp, edu, mentorP, menteeP,
		conns, u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) List(ctx context.Context, role string, limit int) ([]user.User, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`
	args := []any{limit}
	if role != "" {
		query = `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC LIMIT $2`
		args = []any{role, limit}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *PostgresUserRepository) FindMentors(ctx context.Context, f MentorFilter) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role IN ('mentor', 'both')`
	args := []any{}

	if f.Available != nil {
		args = append(args, *f.Available)
		query += fmt.Sprintf(` AND (mentor_profile->>'is_available')::boolean = $%d`, len(args))
	}
	if len(f.Expertise) > 0 {
		expertise, err := json.Marshal(f.Expertise)
		if err != nil {
			return nil, err
		}
		args = append(args, expertise)
		// Overlap test: any requested expertise tag present on the mentor.
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(mentor_profile->'expertise') e
			WHERE e IN (SELECT jsonb_array_elements_text($%d::jsonb))
		)`, len(args))
	}
	query += ` ORDER BY created_at ASC LIMIT 100`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *PostgresUserRepository) FindAvailableMentors(ctx context.Context, excludeID uuid.UUID) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE role IN ('mentor', 'both')
		   AND (mentor_profile->>'is_available')::boolean = true
		   AND id <> $1
		 ORDER BY created_at ASC
		 LIMIT 100`,
		excludeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// AddConnection appends connectionID to the user's connection set. The guard
// keeps the operation idempotent: re-accepting a request never duplicates.
func (r *PostgresUserRepository) AddConnection(ctx context.Context, userID uuid.UUID, connectionID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users SET
			connections = CASE
				WHEN connections @> to_jsonb($2::text) THEN connections
				ELSE connections || to_jsonb($2::text)
			END,
			updated_at = now()
		 WHERE id = $1`,
		userID, connectionID.String(),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) SetTargetCompanies(ctx context.Context, userID uuid.UUID, companies []string) error {
	payload, err := json.Marshal(emptyIfNil(companies))
	if err != nil {
		return err
	}

	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users SET target_companies = $2, updated_at = now() WHERE id = $1`,
		userID, payload,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func encodeUserJSON(u user.User) (skills, targets, exp, edu, conns []byte, mentorP, menteeP []byte, err error) {
	if skills, err = json.Marshal(emptyIfNil(u.Skills)); err != nil {
		return
	}
	if targets, err = json.Marshal(emptyIfNil(u.TargetCompanies)); err != nil {
		return
	}
	if exp, err = json.Marshal(u.Experience); err != nil {
		return
	}
	if edu, err = json.Marshal(u.Education); err != nil {
		return
	}
	if conns, err = json.Marshal(emptyIfNil(u.Connections)); err != nil {
		return
	}
	if u.MentorProfile != nil {
		if mentorP, err = json.Marshal(u.MentorProfile); err != nil {
			return
		}
	}
	if u.MenteeProfile != nil {
		if menteeP, err = json.Marshal(u.MenteeProfile); err != nil {
			return
		}
	}
	return
}

func scanUsers(rows database.Rows) ([]user.User, error) {
	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var skills, targets, exp, edu, conns, mentorP, menteeP []byte
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.College, &u.GraduationYear, &u.CurrentRole, &u.Bio, &u.Location, &u.ProfilePic,
		&skills, &targets, &exp, &edu, &mentorP, &menteeP, &conns,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}

	u.CreatedAt = createdAt
	u.UpdatedAt = updatedAt

	// Documents written by earlier versions may carry extra fields; decoding
	// is deliberately permissive and ignores them.
	if err := decodeJSON(skills, &u.Skills); err != nil {
		return user.User{}, err
	}
	if err := decodeJSON(targets, &u.TargetCompanies); err != nil {
		return user.User{}, err
	}
	if err := decodeJSON(exp, &u.Experience); err != nil {
		return user.User{}, err
	}
	if err := decodeJSON(edu, &u.Education); err != nil {
		return user.User{}, err
	}
	if err := decodeJSON(conns, &u.Connections); err != nil {
		return user.User{}, err
	}
	if len(mentorP) > 0 {
		u.MentorProfile = &user.MentorProfile{}
		if err := decodeJSON(mentorP, u.MentorProfile); err != nil {
			return user.User{}, err
		}
	}
	if len(menteeP) > 0 {
		u.MenteeProfile = &user.MenteeProfile{}
		if err := decodeJSON(menteeP, u.MenteeProfile); err != nil {
			return user.User{}, err
		}
	}

	return u, nil
}

func decodeJSON(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
