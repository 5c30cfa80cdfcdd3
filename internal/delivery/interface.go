package delivery

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/scrawlgame/scrawl/internal/delivery Sender

import "context"

// Sender delivers events to connected clients with at-most-once, best-effort
// semantics. Message loss on disconnect is acceptable; clients recover
// through the reconnect snapshot, not redelivery.
type Sender interface {
	// SendToRoom broadcasts an event to every client in a room
	SendToRoom(ctx context.Context, roomID string, event Event, payload any) error

	// SendToUser delivers an event to a single user's connections
	SendToUser(ctx context.Context, userID string, event Event, payload any) error
}
