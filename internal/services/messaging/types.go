package messaging

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for testing
	Seed int64
}

// GetMoveMessageInput contains parameters for an accepted-move log line
type GetMoveMessageInput struct {
	// PlayerName is the acting player's display name
	PlayerName string

	// Words are the words the move formed
	Words []string

	// Score is the move's total score
	Score int

	// Bingo indicates the player used their entire rack
	Bingo bool
}

// GetMoveMessageOutput contains the generated log line
type GetMoveMessageOutput struct {
	Message string
}

// GetPassMessageInput contains parameters for a passed-turn log line
type GetPassMessageInput struct {
	PlayerName string
}

// GetPassMessageOutput contains the generated log line
type GetPassMessageOutput struct {
	Message string
}

// GetSwapMessageInput contains parameters for a tile-exchange log line
type GetSwapMessageInput struct {
	PlayerName string
	TileCount  int
}

// GetSwapMessageOutput contains the generated log line
type GetSwapMessageOutput struct {
	Message string
}

// GetTimeoutMessageInput contains parameters for a timed-out-turn log line
type GetTimeoutMessageInput struct {
	PlayerName string
}

// GetTimeoutMessageOutput contains the generated log line
type GetTimeoutMessageOutput struct {
	Message string
}

// GetGameEndMessageInput contains parameters for a game-over log line
type GetGameEndMessageInput struct {
	// WinnerName is the top-ranked player's name; empty when the game was
	// aborted without scoring
	WinnerName string

	// WinnerScore is the top-ranked player's final score
	WinnerScore int

	// Aborted indicates the game ended without a ranking
	Aborted bool
}

// GetGameEndMessageOutput contains the generated log line
type GetGameEndMessageOutput struct {
	Message string
}
