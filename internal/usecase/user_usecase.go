package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-connect/internal/clock"
	"career-connect/internal/domain/user"
	"career-connect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmailTaken = errors.New("email already registered")

type UserUsecase interface {
	Create(ctx context.Context, u user.User) (user.User, error)
	Get(ctx context.Context, id uuid.UUID) (user.User, error)
	Update(ctx context.Context, u user.User) (user.User, error)
	List(ctx context.Context, role string, limit int) ([]user.User, error)
	SetTargetCompanies(ctx context.Context, id uuid.UUID, companies []string) error
}

type Users struct {
	users  repository.UserRepository
	clock  clock.Clock
	logger *zap.Logger
}

func NewUserUsecase(users repository.UserRepository, clk clock.Clock, log *zap.Logger) *Users {
	return &Users{users: users, clock: clk, logger: log}
}

func (u *Users) Create(ctx context.Context, in user.User) (user.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return user.User{}, fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if in.Name == "" {
		return user.User{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !validRole(in.Role) {
		return user.User{}, fmt.Errorf("%w: role must be student, mentor or both", ErrValidation)
	}

	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return user.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return user.User{}, err
	}

	now := u.clock.Now()
	in.ID = uuid.New()
	in.CreatedAt = now
	in.UpdatedAt = now
	if in.Connections == nil {
		in.Connections = []string{}
	}

	if err := u.users.Create(ctx, in); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	u.logger.Info("user created",
		zap.String("user_id", in.ID.String()),
		zap.String("role", in.Role),
	)
	return in, nil
}

func (u *Users) Get(ctx context.Context, id uuid.UUID) (user.User, error) {
	found, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

// Update replaces the profile fields of an existing user. Email and creation
// time are immutable; connections are only mutated through acceptance.
func (u *Users) Update(ctx context.Context, in user.User) (user.User, error) {
	current, err := u.Get(ctx, in.ID)
	if err != nil {
		return user.User{}, err
	}

	if in.Role != "" && !validRole(in.Role) {
		return user.User{}, fmt.Errorf("%w: role must be student, mentor or both", ErrValidation)
	}

	in.Email = current.Email
	in.Connections = current.Connections
	in.CreatedAt = current.CreatedAt
	in.UpdatedAt = u.clock.Now()
	if in.Role == "" {
		in.Role = current.Role
	}
	if strings.TrimSpace(in.Name) == "" {
		in.Name = current.Name
	}

	if err := u.users.Update(ctx, in); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	return in, nil
}

func (u *Users) List(ctx context.Context, role string, limit int) ([]user.User, error) {
	if role != "" && !validRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	return u.users.List(ctx, role, limit)
}

func (u *Users) SetTargetCompanies(ctx context.Context, id uuid.UUID, companies []string) error {
	err := u.users.SetTargetCompanies(ctx, id, companies)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}

func validRole(role string) bool {
	switch role {
	case user.RoleStudent, user.RoleMentor, user.RoleBoth:
		return true
	}
	return false
}
