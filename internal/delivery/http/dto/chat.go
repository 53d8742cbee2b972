package dto

import (
	"time"

	"career-connect/internal/repository"
)

type CareerChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type CareerChatMessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func FromAIChatMessage(msg repository.AIChatMessage) CareerChatMessageResponse {
	return CareerChatMessageResponse{
		ID:        msg.ID.String(),
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromAIChatMessages(msgs []repository.AIChatMessage) []CareerChatMessageResponse {
	out := make([]CareerChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromAIChatMessage(m))
	}
	return out
}

type RoomMessageResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	SenderID string `json:"sender_id"`
	Message  string `json:"message"`
	SentAt   string `json:"timestamp"`
}

func FromRoomMessage(msg repository.ChatMessage) RoomMessageResponse {
	return RoomMessageResponse{
		ID:       msg.ID.String(),
		RoomID:   msg.RoomID,
		SenderID: msg.SenderID,
		Message:  msg.Message,
		SentAt:   msg.SentAt.UTC().Format(time.RFC3339),
	}
}

func FromRoomMessages(msgs []repository.ChatMessage) []RoomMessageResponse {
	out := make([]RoomMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromRoomMessage(m))
	}
	return out
}
