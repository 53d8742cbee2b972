package repository

import (
	"context"
	"time"

	"career-connect/internal/database"

	"github.com/google/uuid"
)

// ChatMessage is a persisted relay message for one chat room.
type ChatMessage struct {
	ID       uuid.UUID `json:"id"`
	RoomID   string    `json:"room_id"`
	SenderID string    `json:"sender_id"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"timestamp"`
}

// AIChatMessage is one turn of a user's career-chat conversation.
type AIChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatRepository interface {
	SaveMessage(ctx context.Context, msg ChatMessage) error
	HistoryByRoom(ctx context.Context, roomID string) ([]ChatMessage, error)

	SaveAIMessage(ctx context.Context, msg AIChatMessage) error
	AIHistoryByUser(ctx context.Context, userID uuid.UUID, limit int) ([]AIChatMessage, error)
	ClearAIHistory(ctx context.Context, userID uuid.UUID) error
}

type PostgresChatRepository struct {
	db database.DB
}

func NewPostgresChatRepository(db database.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) SaveMessage(ctx context.Context, msg ChatMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_messages (id, room_id, sender_id, message, sent_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.RoomID, msg.SenderID, msg.Message, msg.SentAt,
	)
	return err
}

func (r *PostgresChatRepository) HistoryByRoom(ctx context.Context, roomID string) ([]ChatMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, room_id, sender_id, message, sent_at
		 FROM chat_messages
		 WHERE room_id = $1
		 ORDER BY sent_at ASC`,
		roomID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ChatMessage, 0)
	for rows.Next() {
		var msg ChatMessage
		if err := rows.Scan(&msg.ID, &msg.RoomID, &msg.SenderID, &msg.Message, &msg.SentAt); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresChatRepository) SaveAIMessage(ctx context.Context, msg AIChatMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ai_chat_messages (id, user_id, role, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.UserID, msg.Role, msg.Content, msg.CreatedAt,
	)
	return err
}

func (r *PostgresChatRepository) AIHistoryByUser(ctx context.Context, userID uuid.UUID, limit int) ([]AIChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, role, content, created_at
		 FROM ai_chat_messages
		 WHERE user_id = $1
		 ORDER BY created_at ASC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AIChatMessage, 0)
	for rows.Next() {
		var msg AIChatMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresChatRepository) ClearAIHistory(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ai_chat_messages WHERE user_id = $1`, userID)
	return err
}
