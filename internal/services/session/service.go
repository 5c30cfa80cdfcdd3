package session

import (
	"context"
	"time"

	"github.com/scrawlgame/scrawl/internal/models"
	"github.com/scrawlgame/scrawl/internal/tilebag"
)

const (
	defaultCooldownDuration = 3 * time.Second
	defaultTurnDuration     = 90 * time.Second
	defaultTurnsUntilSkip   = 3
	defaultRackSize         = 7
)

type service struct {
	cfg      *Config
	registry *Registry
}

// New creates a new session service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Dictionary == nil {
		return nil, ErrNilDictionary
	}
	if cfg.Sender == nil {
		return nil, ErrNilSender
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.CooldownDuration <= 0 {
		cfg.CooldownDuration = defaultCooldownDuration
	}
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = models.DefaultBoardSize
	}
	if cfg.BonusLayout == nil {
		cfg.BonusLayout = models.DefaultBonusLayout
	}
	if cfg.LetterDistribution == nil {
		cfg.LetterDistribution = models.DefaultLetterDistribution
	}

	return &service{
		cfg:      cfg,
		registry: NewRegistry(),
	}, nil
}

// StartGame creates a session for the room and begins play. The registry
// entry is claimed before any work happens so a racing duplicate start fails
// fast with ErrGameAlreadyExists.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	settings := input.Settings
	if settings.TurnDuration <= 0 {
		settings.TurnDuration = defaultTurnDuration
	}
	if settings.TurnsUntilSkip <= 0 {
		settings.TurnsUntilSkip = defaultTurnsUntilSkip
	}
	if settings.RackSize <= 0 {
		settings.RackSize = defaultRackSize
	}
	if settings.GameEnd == "" {
		settings.GameEnd = models.GameEndClassic
	}

	players := make([]*models.Player, 0, len(input.Players))
	for _, info := range input.Players {
		players = append(players, &models.Player{
			ID:   info.ID,
			Name: info.Name,
		})
	}

	sess := &Session{
		gameID:           s.cfg.UUIDGenerator.NewUUID(),
		roomID:           input.RoomID,
		hostID:           input.HostID,
		players:          players,
		settings:         settings,
		board:            models.NewBoard(s.cfg.BoardSize, s.cfg.BonusLayout),
		bag:              tilebag.New(&tilebag.Config{Seed: s.cfg.BagSeed}, s.cfg.LetterDistribution),
		cooldownDuration: s.cfg.CooldownDuration,
		registry:         s.registry,
		dict:             s.cfg.Dictionary,
		sender:           s.cfg.Sender,
		gameRepo:         s.cfg.GameRepo,
		messaging:        s.cfg.Messaging,
		clock:            s.cfg.Clock,
		scheduler:        s.cfg.Scheduler,
		logger:           s.cfg.Logger.With().Str("room", input.RoomID).Logger(),
	}

	if err := s.registry.Create(input.RoomID, sess); err != nil {
		return nil, err
	}

	sess.start(ctx)

	return &StartGameOutput{GameID: sess.gameID}, nil
}

// SubmitMove forwards a scoring move to the room's session
func (s *service) SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, ok := s.registry.Find(input.RoomID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return sess.SubmitMove(ctx, input.PlayerID, input.Placements)
}

// SwapTiles forwards a tile exchange to the room's session
func (s *service) SwapTiles(ctx context.Context, input *SwapTilesInput) (*SwapTilesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, ok := s.registry.Find(input.RoomID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return sess.SwapTiles(ctx, input.PlayerID, input.TileIDs)
}

// PassTurn forwards a pass to the room's session
func (s *service) PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, ok := s.registry.Find(input.RoomID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return sess.PassTurn(ctx, input.PlayerID)
}

// EndGame lets the host terminate the room's game at any point
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, ok := s.registry.Find(input.RoomID)
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := sess.EndByHost(ctx, input.PlayerID); err != nil {
		return nil, err
	}
	return &EndGameOutput{}, nil
}

// Reconnect builds a full-state snapshot for a returning client
func (s *service) Reconnect(ctx context.Context, input *ReconnectInput) (*ReconnectOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, ok := s.registry.Find(input.RoomID)
	if !ok {
		return nil, ErrGameNotFound
	}
	data, err := sess.RefreshData(input.UserID)
	if err != nil {
		return nil, err
	}
	return &ReconnectOutput{Snapshot: data}, nil
}

// MarkPlayerActive lets the host restore a skipped player to the rotation
func (s *service) MarkPlayerActive(ctx context.Context, input *MarkPlayerActiveInput) (*MarkPlayerActiveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	sess, ok := s.registry.Find(input.RoomID)
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := sess.MarkActive(ctx, input.HostID, input.PlayerID); err != nil {
		return nil, err
	}
	return &MarkPlayerActiveOutput{}, nil
}
