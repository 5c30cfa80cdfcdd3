package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/scrawlgame/scrawl/internal/delivery"
)

// envelope is the outbound frame format
type envelope struct {
	Event   delivery.Event `json:"event"`
	Payload any            `json:"payload,omitempty"`
}

// Hub tracks live connections by room and by user and implements
// delivery.Sender over them. Delivery is best effort: a slow or dead client
// is dropped, never waited on.
type Hub struct {
	mu      sync.Mutex
	rooms   map[string]map[*client]struct{}
	users   map[string]map[*client]struct{}
	logger  zerolog.Logger
}

// NewHub creates an empty hub
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*client]struct{}),
		users:  make(map[string]map[*client]struct{}),
		logger: logger,
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[c.roomID] == nil {
		h.rooms[c.roomID] = make(map[*client]struct{})
	}
	h.rooms[c.roomID][c] = struct{}{}

	if h.users[c.userID] == nil {
		h.users[c.userID] = make(map[*client]struct{})
	}
	h.users[c.userID][c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(c)
}

// drop removes a client from both indexes; the caller holds the lock.
// Dropping twice is a no-op.
func (h *Hub) drop(c *client) {
	if c.closed {
		return
	}
	c.closed = true
	if room, ok := h.rooms[c.roomID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	if user, ok := h.users[c.userID]; ok {
		delete(user, c)
		if len(user) == 0 {
			delete(h.users, c.userID)
		}
	}
	close(c.send)
}

// SendToRoom delivers an event to every connection in the room
func (h *Hub) SendToRoom(_ context.Context, roomID string, event delivery.Event, payload any) error {
	frame, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[roomID] {
		h.enqueue(c, frame)
	}
	return nil
}

// SendToUser delivers an event to every connection the user has open
func (h *Hub) SendToUser(_ context.Context, userID string, event delivery.Event, payload any) error {
	frame, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.users[userID] {
		h.enqueue(c, frame)
	}
	return nil
}

// enqueue hands a frame to the client's writer; a full buffer means the
// client stopped draining and gets dropped. The caller holds the lock.
func (h *Hub) enqueue(c *client, frame []byte) {
	select {
	case c.send <- frame:
	default:
		h.logger.Warn().Str("user", c.userID).Str("room", c.roomID).Msg("client not draining, dropping")
		h.drop(c)
	}
}
