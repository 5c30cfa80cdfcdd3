package models

import (
	"time"
)

// GameEndMode selects how a game can finish
type GameEndMode string

const (
	// GameEndClassic ends the game when a player racks out with the bag
	// empty; remaining racks are scored as penalties
	GameEndClassic GameEndMode = "classic"

	// GameEndEndless disables the rack-out trigger; the game runs until
	// all players pass or the host ends it
	GameEndEndless GameEndMode = "endless"
)

// GameSettings holds the per-game ruleset, fixed at game start
type GameSettings struct {
	// TurnDuration is how long each player gets per turn
	TurnDuration time.Duration `json:"turnDuration"`

	// TurnsUntilSkip is the consecutive-timeout threshold after which a
	// player becomes skippable
	TurnsUntilSkip int `json:"turnsUntilSkip"`

	// RackSize is the maximum number of tiles on a rack
	RackSize int `json:"rackSize"`

	// GameEnd selects the end-of-game ruleset
	GameEnd GameEndMode `json:"gameEnd"`

	// BingoBonus awards +50 for playing a full rack in one move
	BingoBonus bool `json:"bingoBonus"`
}

// GameState is the serialized turn state of a session
type GameState struct {
	// TurnPlayerIndex is the position of the current player in turn order
	TurnPlayerIndex int `json:"turnPlayerIndex"`

	// TurnEndTime is when the current turn's timer fires
	TurnEndTime time.Time `json:"turnEndTime"`

	// TurnNumber strictly increases by one per turn advance
	TurnNumber int `json:"turnNumber"`

	// Board is the full grid including fixed flags
	Board *Board `json:"board"`

	// LeftInBag is the remaining bag size
	LeftInBag int `json:"leftInBag"`

	// PassedTurns counts consecutive explicit passes across players
	PassedTurns int `json:"passedTurns"`

	// IsOnCooldown is true during the inter-turn delay
	IsOnCooldown bool `json:"isOnCooldown"`
}

// Game is the persisted record of a session, written on every turn
// completion and at termination. It is sufficient to reconstruct an
// in-flight session after a restart.
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// RoomID is the room the game is being played in
	RoomID string `json:"roomId"`

	// HostID is the user who started the game
	HostID string `json:"hostId"`

	// Players holds the full player records in turn order
	Players []*Player `json:"players"`

	// Settings is the game's ruleset
	Settings GameSettings `json:"settings"`

	// State is the serialized turn state
	State GameState `json:"state"`

	// CreatedAt is when the game was started
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the record was last written
	UpdatedAt time.Time `json:"updatedAt"`
}
