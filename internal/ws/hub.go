package ws

import (
	"sync"

	"go.uber.org/zap"
)

type outbound struct {
	room    string
	payload []byte
}

// Hub fans messages out to the clients subscribed to a room. Rooms are
// created on first subscriber and dropped with the last one.
type Hub struct {
	rooms      map[string]map[*Client]bool
	broadcast  chan outbound
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan outbound, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			room, ok := h.rooms[client.room]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.room] = room
			}
			room[client] = true
			total := len(room)
			h.mutex.Unlock()
			h.logger.Info("ws client joined",
				zap.String("room", client.room),
				zap.Int("room_clients", total),
			)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if room, ok := h.rooms[client.room]; ok {
				if _, subscribed := room[client]; subscribed {
					delete(room, client)
					close(client.send)
				}
				if len(room) == 0 {
					delete(h.rooms, client.room)
				}
			}
			h.mutex.Unlock()
			h.logger.Info("ws client left", zap.String("room", client.room))

		case msg := <-h.broadcast:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.rooms[msg.room]))
			for c := range h.rooms[msg.room] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer, drop it.
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Broadcast(room string, payload []byte) {
	if h == nil || room == "" {
		return
	}
	select {
	case h.broadcast <- outbound{room: room, payload: payload}:
	default:
		h.logger.Warn("ws broadcast dropped", zap.String("room", room))
	}
}

func (h *Hub) RoomSize(room string) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[room])
}
