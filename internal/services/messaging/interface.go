package messaging

import "context"

// Service is the interface for the room log-line service
type Service interface {
	// GetMoveMessage returns a log line for an accepted move
	GetMoveMessage(ctx context.Context, input *GetMoveMessageInput) (*GetMoveMessageOutput, error)

	// GetPassMessage returns a log line for a passed turn
	GetPassMessage(ctx context.Context, input *GetPassMessageInput) (*GetPassMessageOutput, error)

	// GetSwapMessage returns a log line for a tile exchange
	GetSwapMessage(ctx context.Context, input *GetSwapMessageInput) (*GetSwapMessageOutput, error)

	// GetTimeoutMessage returns a log line for a timed-out turn
	GetTimeoutMessage(ctx context.Context, input *GetTimeoutMessageInput) (*GetTimeoutMessageOutput, error)

	// GetGameEndMessage returns a log line for a finished game
	GetGameEndMessage(ctx context.Context, input *GetGameEndMessageInput) (*GetGameEndMessageOutput, error)
}
