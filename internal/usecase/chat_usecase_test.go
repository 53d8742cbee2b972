package usecase

import (
	"context"
	"errors"
	"testing"

	"career-connect/internal/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newChatUsecase(chats *mockChatRepo, users *mockUserRepo, advisor *mockAdvisor) *Chat {
	return NewChatUsecase(chats, users, advisor, clock.Fixed{Time: testInstant}, zap.NewNop())
}

func TestChat_SendCareerMessage_PersistsBothTurns(t *testing.T) {
	chats := &mockChatRepo{}
	uc := newChatUsecase(chats, newMockUserRepo(), &mockAdvisor{reply: "Focus on system design."})

	userID := uuid.New()
	reply, err := uc.SendCareerMessage(context.Background(), userID, "How do I prepare for interviews?")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Role != "assistant" || reply.Content != "Focus on system design." {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if len(chats.aiMessages) != 2 {
		t.Fatalf("expected 2 persisted turns, got %d", len(chats.aiMessages))
	}
	if chats.aiMessages[0].Role != "user" || chats.aiMessages[1].Role != "assistant" {
		t.Fatalf("turn order wrong: %+v", chats.aiMessages)
	}
}

func TestChat_SendCareerMessage_AdvisorFailureFallsBack(t *testing.T) {
	chats := &mockChatRepo{}
	uc := newChatUsecase(chats, newMockUserRepo(), &mockAdvisor{err: errors.New("model down")})

	reply, err := uc.SendCareerMessage(context.Background(), uuid.New(), "help")
	if err != nil {
		t.Fatalf("expected fallback, got err: %v", err)
	}
	if reply.Content != fallbackAdvice {
		t.Fatalf("expected fallback reply, got %q", reply.Content)
	}
	if len(chats.aiMessages) != 2 {
		t.Fatalf("turns not persisted on fallback")
	}
}

func TestChat_SendCareerMessage_EmptyMessage(t *testing.T) {
	uc := newChatUsecase(&mockChatRepo{}, newMockUserRepo(), &mockAdvisor{})
	_, err := uc.SendCareerMessage(context.Background(), uuid.New(), "   ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestChat_ClearCareerHistory(t *testing.T) {
	chats := &mockChatRepo{}
	uc := newChatUsecase(chats, newMockUserRepo(), &mockAdvisor{reply: "ok"})

	userID := uuid.New()
	if _, err := uc.SendCareerMessage(context.Background(), userID, "hi"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.ClearCareerHistory(context.Background(), userID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	history, err := uc.CareerHistory(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("history not cleared: %v", history)
	}
}

func TestChat_SaveRoomMessage(t *testing.T) {
	chats := &mockChatRepo{}
	uc := newChatUsecase(chats, newMockUserRepo(), &mockAdvisor{})

	msg, err := uc.SaveRoomMessage(context.Background(), "room-1", "sender-1", "hello")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if msg.ID == uuid.Nil {
		t.Fatalf("id not assigned")
	}
	if !msg.SentAt.Equal(testInstant) {
		t.Fatalf("timestamp not from clock")
	}
	if len(chats.roomMessages) != 1 {
		t.Fatalf("message not persisted")
	}

	if _, err := uc.SaveRoomMessage(context.Background(), "", "sender-1", "hello"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
