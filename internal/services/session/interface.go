package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/scrawlgame/scrawl/internal/services/session Service

// Service defines the interface for game session operations
type Service interface {
	// StartGame creates and starts a session for a room. It fails with
	// ErrGameAlreadyExists when the room already has a live game.
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitMove validates and applies a scoring move for the turn player
	SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error)

	// SwapTiles exchanges rack tiles for fresh ones and ends the turn
	SwapTiles(ctx context.Context, input *SwapTilesInput) (*SwapTilesOutput, error)

	// PassTurn ends the turn without scoring and advances the pass streak
	PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error)

	// EndGame terminates a game at the host's request
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// Reconnect returns the resync snapshot for a rejoining player
	Reconnect(ctx context.Context, input *ReconnectInput) (*ReconnectOutput, error)

	// MarkPlayerActive clears a player's inactivity state (host recovery)
	MarkPlayerActive(ctx context.Context, input *MarkPlayerActiveInput) (*MarkPlayerActiveOutput, error)
}
