package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-connect/internal/clock"
	"career-connect/internal/domain/mentorship"
	"career-connect/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testInstant = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newMentorshipUsecase(users *mockUserRepo, requests *mockRequestRepo) *Mentorship {
	return NewMentorshipUsecase(users, requests, clock.Fixed{Time: testInstant}, zap.NewNop())
}

func TestMentorship_CreateRequest_FreezesScore(t *testing.T) {
	mentor := user.User{
		ID:       uuid.New(),
		Role:     user.RoleMentor,
		Skills:   []string{"python", "go"},
		Location: "Bandung",
		MentorProfile: &user.MentorProfile{
			IsAvailable:     true,
			Expertise:       []string{"go", "sql"},
			YearsExperience: 4,
		},
	}
	mentee := user.User{
		ID:       uuid.New(),
		Role:     user.RoleStudent,
		Skills:   []string{"python"},
		Location: "bandung",
		MenteeProfile: &user.MenteeProfile{
			SkillsToLearn: []string{"go", "sql"},
		},
	}

	users := newMockUserRepo(mentor, mentee)
	requests := newMockRequestRepo()
	uc := newMentorshipUsecase(users, requests)

	req, err := uc.CreateRequest(context.Background(), mentor.ID, mentee.ID, "please mentor me")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.Status != mentorship.StatusPending {
		t.Fatalf("expected pending, got %s", req.Status)
	}
	// 0.40 + 0.25 + 0.10 + 0.15 = 0.90
	if req.CompatibilityScore != 90 {
		t.Fatalf("expected score 90, got %v", req.CompatibilityScore)
	}
	if !req.CreatedAt.Equal(testInstant) {
		t.Fatalf("expected clock time, got %v", req.CreatedAt)
	}
	if _, ok := requests.requests[req.ID]; !ok {
		t.Fatalf("request not persisted")
	}
}

func TestMentorship_CreateRequest_UnknownUser(t *testing.T) {
	uc := newMentorshipUsecase(newMockUserRepo(), newMockRequestRepo())
	_, err := uc.CreateRequest(context.Background(), uuid.New(), uuid.New(), "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMentorship_Respond_InvalidStatus(t *testing.T) {
	uc := newMentorshipUsecase(newMockUserRepo(), newMockRequestRepo())
	_, err := uc.Respond(context.Background(), uuid.New(), "maybe")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMentorship_Respond_AcceptConnectsBothSides(t *testing.T) {
	req := mentorship.Request{
		ID:       uuid.New(),
		MentorID: uuid.New(),
		MenteeID: uuid.New(),
		Status:   mentorship.StatusPending,
	}
	users := newMockUserRepo()
	requests := newMockRequestRepo(req)
	uc := newMentorshipUsecase(users, requests)

	updated, err := uc.Respond(context.Background(), req.ID, mentorship.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != mentorship.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}

	mentorConns := users.connections[req.MentorID]
	menteeConns := users.connections[req.MenteeID]
	if len(mentorConns) != 1 || mentorConns[0] != req.MenteeID.String() {
		t.Fatalf("mentor connections wrong: %v", mentorConns)
	}
	if len(menteeConns) != 1 || menteeConns[0] != req.MentorID.String() {
		t.Fatalf("mentee connections wrong: %v", menteeConns)
	}
}

func TestMentorship_Respond_RejectLeavesConnectionsAlone(t *testing.T) {
	req := mentorship.Request{
		ID:       uuid.New(),
		MentorID: uuid.New(),
		MenteeID: uuid.New(),
		Status:   mentorship.StatusPending,
	}
	users := newMockUserRepo()
	requests := newMockRequestRepo(req)

	updated, err := newMentorshipUsecase(users, requests).Respond(context.Background(), req.ID, mentorship.StatusRejected)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != mentorship.StatusRejected {
		t.Fatalf("expected rejected, got %s", updated.Status)
	}
	if len(users.connections) != 0 {
		t.Fatalf("expected no connections, got %v", users.connections)
	}
}

func TestMentorship_Respond_TerminalRequestFailsValidation(t *testing.T) {
	req := mentorship.Request{
		ID:       uuid.New(),
		MentorID: uuid.New(),
		MenteeID: uuid.New(),
		Status:   mentorship.StatusPending,
	}
	users := newMockUserRepo()
	requests := newMockRequestRepo(req)
	uc := newMentorshipUsecase(users, requests)

	if _, err := uc.Respond(context.Background(), req.ID, mentorship.StatusAccepted); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := uc.Respond(context.Background(), req.ID, mentorship.StatusRejected)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if got := requests.requests[req.ID].Status; got != mentorship.StatusAccepted {
		t.Fatalf("status flipped to %s", got)
	}
}

func TestMentorship_Respond_UnknownRequest(t *testing.T) {
	uc := newMentorshipUsecase(newMockUserRepo(), newMockRequestRepo())
	_, err := uc.Respond(context.Background(), uuid.New(), mentorship.StatusAccepted)
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}
