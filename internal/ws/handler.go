package ws

import (
	"context"
	"net/http"

	"career-connect/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// MessageSink persists a chat message before it is fanned out.
type MessageSink interface {
	SaveRoomMessage(ctx context.Context, roomID, senderID, message string) (repository.ChatMessage, error)
}

type Handler struct {
	hub    *Hub
	sink   MessageSink
	logger *zap.Logger
}

func NewHandler(hub *Hub, sink MessageSink, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{hub: hub, sink: sink, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/ws/chat/:room_id", h.HandleChatWS)
}

func (h *Handler) HandleChatWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	room := c.Params("room_id")
	sender := c.Query("user_id")
	if room == "" || sender == "" {
		return fiber.ErrBadRequest
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(h.hub, conn, h.sink, room, sender, h.logger)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
