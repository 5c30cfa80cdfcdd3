package delivery

import (
	"time"

	"github.com/scrawlgame/scrawl/internal/models"
)

// Event names the kind of an outbound notification
type Event string

const (
	// EventGameStarted announces a new game to the room
	EventGameStarted Event = "gameStarted"

	// EventGameUpdated carries the board, bag count and public player list
	EventGameUpdated Event = "gameUpdated"

	// EventRackUpdated carries a player's rack, sent to that player only
	EventRackUpdated Event = "rackUpdated"

	// EventTurnStarted announces whose turn began and when it ends
	EventTurnStarted Event = "turnStarted"

	// EventTurnEnded announces the current turn is over
	EventTurnEnded Event = "turnEnded"

	// EventTurnTimedOut tells a player their turn expired, sent privately
	EventTurnTimedOut Event = "turnTimedOut"

	// EventMoveRejected reports invalid words to the acting player only
	EventMoveRejected Event = "moveRejected"

	// EventPlayerSkippable tells the host which players may be skipped
	EventPlayerSkippable Event = "playerCanBeSkipped"

	// EventGameEnded announces the final standings to the room
	EventGameEnded Event = "gameEnded"

	// EventGameLog carries a chat-style log line for the room
	EventGameLog Event = "gameLog"
)

// PlayerView is the public projection of a player. It never includes rack
// contents.
type PlayerView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Score         int    `json:"score"`
	InactiveTurns int    `json:"inactiveTurns"`
	Skipped       bool   `json:"skipped"`
	RackCount     int    `json:"rackCount"`
}

// GameStartedPayload is broadcast when a game begins
type GameStartedPayload struct {
	RoomID  string       `json:"roomId"`
	HostID  string       `json:"hostId"`
	Players []PlayerView `json:"players"`
}

// GameUpdatedPayload is broadcast after every applied mutation. The board is
// a snapshot, never an alias of live session state.
type GameUpdatedPayload struct {
	Board    *models.Board `json:"board"`
	BagCount int           `json:"bagCount"`
	Players  []PlayerView  `json:"players"`
}

// RackUpdatedPayload is sent privately to the rack's owner
type RackUpdatedPayload struct {
	Rack []models.Tile `json:"rack"`
}

// TurnStartedPayload announces the new current player
type TurnStartedPayload struct {
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	EndTime    time.Time `json:"endTime"`
	TurnNumber int       `json:"turnNumber"`
}

// TurnEndedPayload announces the end of a turn
type TurnEndedPayload struct {
	PlayerID   string `json:"playerId"`
	TurnNumber int    `json:"turnNumber"`
}

// TurnTimedOutPayload is sent privately to the player who timed out
type TurnTimedOutPayload struct {
	TurnNumber    int `json:"turnNumber"`
	InactiveTurns int `json:"inactiveTurns"`
}

// MoveRejectedPayload reports the offending words of a rejected move
type MoveRejectedPayload struct {
	InvalidWords []string `json:"invalidWords"`
}

// PlayerSkippablePayload is sent to the host when players become skippable
type PlayerSkippablePayload struct {
	Players []PlayerView `json:"players"`
}

// GameEndReason states why a game terminated
type GameEndReason string

const (
	// EndReasonRackOut: a player emptied their rack with the bag empty
	EndReasonRackOut GameEndReason = "rackOut"

	// EndReasonAllPassed: every active player passed in a row
	EndReasonAllPassed GameEndReason = "allPassed"

	// EndReasonAllInactive: every player hit the inactivity threshold
	EndReasonAllInactive GameEndReason = "allInactive"

	// EndReasonHostEnded: the host terminated the game
	EndReasonHostEnded GameEndReason = "hostEnded"
)

// GameEndedPayload carries the final ranking, ordered by score descending
type GameEndedPayload struct {
	Reason   GameEndReason `json:"reason"`
	Rankings []PlayerView  `json:"rankings,omitempty"`
}

// GameLogPayload is a human-readable room log line
type GameLogPayload struct {
	Message string `json:"message"`
}
