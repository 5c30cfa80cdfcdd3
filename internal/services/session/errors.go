package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameAlreadyExists SessionError = "a game is already running in this room"
	ErrGameNotFound      SessionError = "no active game for this room"
	ErrGameNotActive     SessionError = "the game has already ended"
	ErrPlayerNotFound    SessionError = "player is not part of this game"
	ErrNotPlayersTurn    SessionError = "it is not this player's turn"
	ErrTurnNotActive     SessionError = "no turn is currently active"
	ErrNotHost           SessionError = "only the host may do this"
	ErrNotEnoughPlayers  SessionError = "a game needs at least two players"
	ErrNoTilesPlaced     SessionError = "a move must place at least one tile"
	ErrTileNotInRack     SessionError = "tile is not in the player's rack"
	ErrSquareOccupied    SessionError = "target square is already occupied"
	ErrSquareOutOfRange  SessionError = "target square is outside the board"
	ErrBlankNeedsLetter  SessionError = "a blank tile needs an assigned letter"
	ErrNilConfig         SessionError = "config cannot be nil"
	ErrNilInput          SessionError = "input cannot be nil"
	ErrNilDictionary     SessionError = "dictionary cannot be nil"
	ErrNilSender         SessionError = "sender cannot be nil"
	ErrNilGameRepo       SessionError = "game repository cannot be nil"
	ErrNilMessaging      SessionError = "messaging service cannot be nil"
	ErrNilClock          SessionError = "clock cannot be nil"
	ErrNilScheduler      SessionError = "scheduler cannot be nil"
	ErrNilUUIDGenerator  SessionError = "UUID generator cannot be nil"
)
