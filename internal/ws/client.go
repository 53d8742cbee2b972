package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192

	persistTimeout = 5 * time.Second
)

type inboundFrame struct {
	Message string `json:"message"`
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	sink   MessageSink
	room   string
	sender string
	send   chan []byte
	logger *zap.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, sink MessageSink, room, sender string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		hub:    hub,
		conn:   conn,
		sink:   sink,
		room:   room,
		sender: sender,
		send:   make(chan []byte, 256),
		logger: logger,
	}
}

// ReadPump persists every inbound frame before fanning it out, so a message a
// subscriber saw is always also in history.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("ws read error", zap.Error(err))
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			// Bare text frames are accepted as the message itself.
			frame.Message = string(raw)
		}

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		saved, err := c.sink.SaveRoomMessage(ctx, c.room, c.sender, frame.Message)
		cancel()
		if err != nil {
			c.logger.Warn("ws message rejected",
				zap.String("room", c.room),
				zap.Error(err),
			)
			continue
		}

		payload, err := json.Marshal(messageEvent{
			Type:      "message",
			ID:        saved.ID.String(),
			RoomID:    saved.RoomID,
			SenderID:  saved.SenderID,
			Message:   saved.Message,
			Timestamp: saved.SentAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			continue
		}
		c.hub.Broadcast(c.room, payload)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

type messageEvent struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	SenderID  string `json:"sender_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
