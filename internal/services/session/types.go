package session

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/scrawlgame/scrawl/internal/common/clock"
	"github.com/scrawlgame/scrawl/internal/common/timer"
	"github.com/scrawlgame/scrawl/internal/common/uuid"
	"github.com/scrawlgame/scrawl/internal/delivery"
	"github.com/scrawlgame/scrawl/internal/models"
	gameRepo "github.com/scrawlgame/scrawl/internal/repositories/game"
	"github.com/scrawlgame/scrawl/internal/services/messaging"
)

// Dictionary is the word lookup a session validates moves against. It must
// be safe for unsynchronized concurrent reads.
type Dictionary interface {
	Contains(word string) bool
}

// Config holds configuration for the session service
type Config struct {
	// CooldownDuration is the fixed inter-turn delay
	CooldownDuration time.Duration

	// BoardSize is the board edge length; defaults to the standard 15
	BoardSize int

	// BonusLayout is the bonus square arrangement; defaults to standard
	BonusLayout []models.BonusSquare

	// LetterDistribution seeds each game's bag; defaults to standard
	LetterDistribution []models.LetterCount

	// BagSeed fixes the bag shuffle for testing; zero means random
	BagSeed int64

	// Dependencies
	Dictionary Dictionary
	Sender     delivery.Sender
	GameRepo   gameRepo.Repository
	Messaging  messaging.Service

	Clock         clock.Clock
	Scheduler     timer.Scheduler
	UUIDGenerator uuid.UUID

	Logger zerolog.Logger
}

// PlayerInfo identifies one player joining a game, in turn order
type PlayerInfo struct {
	// ID is the player's user ID
	ID string

	// Name is the player's display name
	Name string
}

// StartGameInput contains parameters for starting a game in a room
type StartGameInput struct {
	// RoomID is the room the game is played in
	RoomID string

	// HostID is the user starting the game
	HostID string

	// Players is the turn order, fixed for the game's lifetime
	Players []PlayerInfo

	// Settings is the game's ruleset; zero fields get defaults
	Settings models.GameSettings
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// GameID is the unique identifier of the created game
	GameID string
}

// TilePlacement positions one rack tile on the board
type TilePlacement struct {
	// TileID identifies the tile in the acting player's rack
	TileID int

	// X and Y are the target square's coordinates
	X int
	Y int

	// BlankLetter assigns a letter to a blank tile; required for blanks,
	// ignored for lettered tiles
	BlankLetter string
}

// SubmitMoveInput contains parameters for a scoring move
type SubmitMoveInput struct {
	// RoomID is the room the move was submitted in
	RoomID string

	// PlayerID is the acting player
	PlayerID string

	// Placements are the tiles the move puts on the board
	Placements []TilePlacement
}

// SubmitMoveOutput contains the result of a scoring move
type SubmitMoveOutput struct {
	// Accepted indicates the move was applied
	Accepted bool

	// InvalidWords holds the words rejected by the dictionary; empty when
	// the move was accepted
	InvalidWords []string

	// Words are the accepted move's formed words
	Words []string

	// Score is the accepted move's total score, bonuses included
	Score int

	// Bingo indicates the full-rack bonus was applied
	Bingo bool
}

// SwapTilesInput contains parameters for a tile exchange
type SwapTilesInput struct {
	// RoomID is the room the exchange was submitted in
	RoomID string

	// PlayerID is the acting player
	PlayerID string

	// TileIDs are the rack tiles to exchange
	TileIDs []int
}

// SwapTilesOutput contains the result of a tile exchange
type SwapTilesOutput struct {
	// Drawn is how many replacement tiles the bag provided
	Drawn int
}

// PassTurnInput contains parameters for an explicit pass
type PassTurnInput struct {
	// RoomID is the room the pass was submitted in
	RoomID string

	// PlayerID is the acting player
	PlayerID string
}

// PassTurnOutput contains the result of an explicit pass
type PassTurnOutput struct{}

// EndGameInput contains parameters for a host-forced termination
type EndGameInput struct {
	// RoomID is the room whose game should end
	RoomID string

	// PlayerID is the requesting user; must be the host
	PlayerID string
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct{}

// ReconnectInput contains parameters for a resync request
type ReconnectInput struct {
	// RoomID is the room being rejoined
	RoomID string

	// UserID is the reconnecting player
	UserID string
}

// RefreshData is the reconnect snapshot. Turn fields are nil while the
// session is on cooldown, since no turn is officially active then.
type RefreshData struct {
	// TurnPlayerID is the current player, nil during cooldown
	TurnPlayerID *string `json:"turnPlayerId"`

	// TurnEndTime is when the current turn expires, nil during cooldown
	TurnEndTime *time.Time `json:"turnEndTime"`

	// TurnNumber is the current turn number, nil during cooldown
	TurnNumber *int `json:"turnNumber"`

	// Board is a snapshot of the full grid
	Board *models.Board `json:"board"`

	// BagCount is the remaining bag size
	BagCount int `json:"bagCount"`

	// Rack is the requesting player's own rack, never anyone else's
	Rack []models.Tile `json:"rack"`

	// Players is the public player list
	Players []delivery.PlayerView `json:"players"`
}

// ReconnectOutput contains the resync snapshot
type ReconnectOutput struct {
	Snapshot *RefreshData
}

// MarkPlayerActiveInput contains parameters for the host recovery action
type MarkPlayerActiveInput struct {
	// RoomID is the room the game is played in
	RoomID string

	// HostID is the requesting user; must be the host
	HostID string

	// PlayerID is the player to mark active again
	PlayerID string
}

// MarkPlayerActiveOutput contains the result of marking a player active
type MarkPlayerActiveOutput struct{}
