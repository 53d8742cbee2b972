package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-connect/internal/clock"
	"career-connect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fallbackAdvice is returned when the model is unreachable; the user's
// message is still persisted so the conversation survives the outage.
const fallbackAdvice = "I can't reach the career advisor right now. Please try again in a moment."

const aiHistoryLimit = 50

// CareerAdvisor produces a career-advice reply for a user message, optionally
// grounded in the user's profile.
type CareerAdvisor interface {
	Reply(ctx context.Context, message string, profileContext string) (string, error)
}

type ChatUsecase interface {
	SendCareerMessage(ctx context.Context, userID uuid.UUID, message string) (repository.AIChatMessage, error)
	CareerHistory(ctx context.Context, userID uuid.UUID) ([]repository.AIChatMessage, error)
	ClearCareerHistory(ctx context.Context, userID uuid.UUID) error

	SaveRoomMessage(ctx context.Context, roomID, senderID, message string) (repository.ChatMessage, error)
	RoomHistory(ctx context.Context, roomID string) ([]repository.ChatMessage, error)
}

type Chat struct {
	chats   repository.ChatRepository
	users   repository.UserRepository
	advisor CareerAdvisor
	clock   clock.Clock
	logger  *zap.Logger
}

func NewChatUsecase(chats repository.ChatRepository, users repository.UserRepository, advisor CareerAdvisor, clk clock.Clock, log *zap.Logger) *Chat {
	return &Chat{chats: chats, users: users, advisor: advisor, clock: clk, logger: log}
}

// SendCareerMessage persists the user turn, asks the advisor for a reply and
// persists that too. An advisor failure degrades to a canned reply instead of
// an error so the conversation stays usable.
func (u *Chat) SendCareerMessage(ctx context.Context, userID uuid.UUID, message string) (repository.AIChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return repository.AIChatMessage{}, fmt.Errorf("%w: message is required", ErrValidation)
	}

	userMsg := repository.AIChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      "user",
		Content:   message,
		CreatedAt: u.clock.Now(),
	}
	if err := u.chats.SaveAIMessage(ctx, userMsg); err != nil {
		return repository.AIChatMessage{}, fmt.Errorf("save chat message: %w", err)
	}

	reply, err := u.advisor.Reply(ctx, message, u.profileContext(ctx, userID))
	if err != nil {
		u.logger.Warn("career advisor unavailable",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		reply = fallbackAdvice
	}

	assistantMsg := repository.AIChatMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      "assistant",
		Content:   reply,
		CreatedAt: u.clock.Now(),
	}
	if err := u.chats.SaveAIMessage(ctx, assistantMsg); err != nil {
		return repository.AIChatMessage{}, fmt.Errorf("save chat reply: %w", err)
	}
	return assistantMsg, nil
}

// profileContext is best-effort; an unknown user just gets generic advice.
func (u *Chat) profileContext(ctx context.Context, userID uuid.UUID) string {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			u.logger.Warn("profile lookup for chat failed", zap.Error(err))
		}
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Role: %s", usr.Role)
	if usr.CurrentRole != "" {
		fmt.Fprintf(&b, "\nCurrent position: %s", usr.CurrentRole)
	}
	if len(usr.Skills) > 0 {
		fmt.Fprintf(&b, "\nSkills: %s", strings.Join(usr.Skills, ", "))
	}
	if len(usr.TargetCompanies) > 0 {
		fmt.Fprintf(&b, "\nTarget companies: %s", strings.Join(usr.TargetCompanies, ", "))
	}
	return b.String()
}

func (u *Chat) CareerHistory(ctx context.Context, userID uuid.UUID) ([]repository.AIChatMessage, error) {
	return u.chats.AIHistoryByUser(ctx, userID, aiHistoryLimit)
}

func (u *Chat) ClearCareerHistory(ctx context.Context, userID uuid.UUID) error {
	return u.chats.ClearAIHistory(ctx, userID)
}

func (u *Chat) SaveRoomMessage(ctx context.Context, roomID, senderID, message string) (repository.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if roomID == "" || senderID == "" || message == "" {
		return repository.ChatMessage{}, fmt.Errorf("%w: room, sender and message are required", ErrValidation)
	}

	msg := repository.ChatMessage{
		ID:       uuid.New(),
		RoomID:   roomID,
		SenderID: senderID,
		Message:  message,
		SentAt:   u.clock.Now(),
	}
	if err := u.chats.SaveMessage(ctx, msg); err != nil {
		return repository.ChatMessage{}, fmt.Errorf("save room message: %w", err)
	}
	return msg, nil
}

func (u *Chat) RoomHistory(ctx context.Context, roomID string) ([]repository.ChatMessage, error) {
	return u.chats.HistoryByRoom(ctx, roomID)
}
