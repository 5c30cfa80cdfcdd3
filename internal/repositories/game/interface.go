package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/scrawlgame/scrawl/internal/repositories/game Repository

import (
	"context"
)

// Repository defines the interface for game state persistence. The
// authoritative state lives in the session's memory; the repository only
// archives it, so callers treat failures as non-fatal.
type Repository interface {
	// CreateGame persists a newly started game
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// UpdateGameState rewrites a game's record after a turn completes
	UpdateGameState(ctx context.Context, input *UpdateGameStateInput) error

	// GetGame retrieves a game record by room ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// DeleteGame removes a game record
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
