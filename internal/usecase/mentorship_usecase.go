package usecase

import (
	"context"
	"errors"
	"fmt"

	"career-connect/internal/clock"
	"career-connect/internal/domain/matching"
	"career-connect/internal/domain/mentorship"
	"career-connect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MentorshipUsecase interface {
	CreateRequest(ctx context.Context, mentorID, menteeID uuid.UUID, message string) (mentorship.Request, error)
	Respond(ctx context.Context, requestID uuid.UUID, status string) (mentorship.Request, error)
	RequestsFor(ctx context.Context, userID uuid.UUID) ([]mentorship.Request, error)
}

type Mentorship struct {
	users    repository.UserRepository
	requests repository.MentorshipRepository
	clock    clock.Clock
	logger   *zap.Logger
}

func NewMentorshipUsecase(users repository.UserRepository, requests repository.MentorshipRepository, clk clock.Clock, log *zap.Logger) *Mentorship {
	return &Mentorship{users: users, requests: requests, clock: clk, logger: log}
}

// CreateRequest freezes the compatibility score at creation time. The stored
// score is never recomputed, even if either profile changes later.
func (u *Mentorship) CreateRequest(ctx context.Context, mentorID, menteeID uuid.UUID, message string) (mentorship.Request, error) {
	mentor, err := u.users.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return mentorship.Request{}, ErrUserNotFound
		}
		return mentorship.Request{}, err
	}

	mentee, err := u.users.GetByID(ctx, menteeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return mentorship.Request{}, ErrUserNotFound
		}
		return mentorship.Request{}, err
	}

	req := mentorship.Request{
		ID:                 uuid.New(),
		MentorID:           mentorID,
		MenteeID:           menteeID,
		Status:             mentorship.StatusPending,
		CompatibilityScore: matching.Score(mentor, mentee),
		Message:            message,
		CreatedAt:          u.clock.Now(),
	}

	if err := u.requests.Create(ctx, req); err != nil {
		return mentorship.Request{}, fmt.Errorf("create mentorship request: %w", err)
	}

	u.logger.Info("mentorship request created",
		zap.String("request_id", req.ID.String()),
		zap.String("mentor_id", mentorID.String()),
		zap.String("mentee_id", menteeID.String()),
		zap.Float64("compatibility_score", req.CompatibilityScore),
	)
	return req, nil
}

// Respond moves a pending request to accepted or rejected. Both outcomes are
// terminal: a second response fails validation instead of silently flipping
// the status. Acceptance connects both users; the set-add keeps a repeated
// acceptance from duplicating connections.
func (u *Mentorship) Respond(ctx context.Context, requestID uuid.UUID, status string) (mentorship.Request, error) {
	if status != mentorship.StatusAccepted && status != mentorship.StatusRejected {
		return mentorship.Request{}, fmt.Errorf("%w: status must be accepted or rejected", ErrValidation)
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return mentorship.Request{}, ErrRequestNotFound
		}
		return mentorship.Request{}, err
	}

	if mentorship.Terminal(req.Status) {
		return mentorship.Request{}, fmt.Errorf("%w: request already %s", ErrValidation, req.Status)
	}

	if err := u.requests.UpdateStatus(ctx, requestID, status); err != nil {
		return mentorship.Request{}, fmt.Errorf("update request status: %w", err)
	}
	req.Status = status

	if status == mentorship.StatusAccepted {
		if err := u.users.AddConnection(ctx, req.MentorID, req.MenteeID); err != nil {
			return mentorship.Request{}, fmt.Errorf("connect mentor: %w", err)
		}
		if err := u.users.AddConnection(ctx, req.MenteeID, req.MentorID); err != nil {
			return mentorship.Request{}, fmt.Errorf("connect mentee: %w", err)
		}
	}

	u.logger.Info("mentorship request responded",
		zap.String("request_id", requestID.String()),
		zap.String("status", status),
	)
	return req, nil
}

func (u *Mentorship) RequestsFor(ctx context.Context, userID uuid.UUID) ([]mentorship.Request, error) {
	return u.requests.FindByUser(ctx, userID)
}
