package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/scrawlgame/scrawl/internal/common/clock"
	"github.com/scrawlgame/scrawl/internal/common/timer"
	"github.com/scrawlgame/scrawl/internal/delivery"
	"github.com/scrawlgame/scrawl/internal/models"
	gameRepo "github.com/scrawlgame/scrawl/internal/repositories/game"
	"github.com/scrawlgame/scrawl/internal/services/messaging"
	"github.com/scrawlgame/scrawl/internal/tilebag"
	"github.com/scrawlgame/scrawl/internal/words"
)

// fullRackBonus is the fixed score awarded for playing an entire rack in
// one move.
const fullRackBonus = 50

// Session is the per-room turn state machine. It owns one board, one bag and
// the ordered player list, and is the only writer of any of them. The mutex
// makes every inbound action (move, swap, pass, timeout, cooldown expiry)
// run to completion before the next one is admitted, so a stale timer or a
// racing client can never interleave with a half-applied mutation.
type Session struct {
	mu sync.Mutex

	gameID   string
	roomID   string
	hostID   string
	players  []*models.Player
	settings models.GameSettings

	board *models.Board
	bag   *tilebag.Bag

	turnPlayerIndex int
	turnNumber      int
	turnEndTime     time.Time
	passedTurns     int
	onCooldown      bool
	active          bool

	turnTimer     timer.Handle
	cooldownTimer timer.Handle

	cooldownDuration time.Duration
	createdAt        time.Time

	registry  *Registry
	dict      Dictionary
	sender    delivery.Sender
	gameRepo  gameRepo.Repository
	messaging messaging.Service
	clock     clock.Clock
	scheduler timer.Scheduler
	logger    zerolog.Logger
}

// start deals the initial racks, archives the new game, announces it to the
// room and schedules the first turn behind an initial cooldown.
func (s *Session) start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = true
	s.turnPlayerIndex = -1 // first advance lands on player 0
	s.turnNumber = 0
	s.createdAt = s.clock.Now()

	for _, p := range s.players {
		p.Rack = s.bag.Draw(s.settings.RackSize)
	}

	if err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{Game: s.record()}); err != nil {
		s.logger.Warn().Err(err).Str("room", s.roomID).Msg("failed to archive new game")
	}

	s.send(ctx, s.roomID, delivery.EventGameStarted, delivery.GameStartedPayload{
		RoomID:  s.roomID,
		HostID:  s.hostID,
		Players: s.playerViews(),
	})
	s.broadcastGameUpdate(ctx)
	for _, p := range s.players {
		s.sendRack(ctx, p)
	}

	s.beginCooldown(ctx)
}

// SubmitMove validates a scoring move against the session's own board and
// rack state. A rejected move leaves board, rack and bag untouched and the
// turn running; an accepted move is applied, scored and ends the turn.
func (s *Session) SubmitMove(ctx context.Context, playerID string, placements []TilePlacement) (*SubmitMoveOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.requireTurn(playerID)
	if err != nil {
		return nil, err
	}
	if len(placements) == 0 {
		return nil, ErrNoTilesPlaced
	}

	// Stage the placements on the live board; they are backed out as a
	// unit if anything fails validation.
	staged, placedIDs, err := s.stagePlacements(player, placements)
	if err != nil {
		s.unstage(staged)
		return nil, err
	}

	formed := words.Extract(s.board, placedIDs)
	invalid := lo.FilterMap(formed, func(w words.Word, _ int) (string, bool) {
		return w.Text, !s.dict.Contains(w.Text)
	})
	if len(invalid) > 0 {
		s.unstage(staged)
		s.send(ctx, playerID, delivery.EventMoveRejected, delivery.MoveRejectedPayload{
			InvalidWords: invalid,
		}, true)
		return &SubmitMoveOutput{Accepted: false, InvalidWords: invalid}, nil
	}

	score := 0
	for _, w := range formed {
		score += words.Score(w, placedIDs)
	}
	bingo := s.settings.BingoBonus && len(placements) == s.settings.RackSize
	if bingo {
		score += fullRackBonus
	}

	// Commit: tiles leave the rack for good and the squares freeze
	for _, sq := range staged {
		sq.Fixed = true
	}
	s.removeFromRack(player, lo.Keys(placedIDs))
	player.Rack = append(player.Rack, s.bag.Draw(s.settings.RackSize-len(player.Rack))...)
	player.Score += score
	player.InactiveTurns = 0
	player.Skipped = false
	s.passedTurns = 0

	s.broadcastGameUpdate(ctx)
	s.sendRack(ctx, player)
	s.logLine(ctx, s.moveLogLine(ctx, player, formed, score, bingo))

	s.endTurn(ctx)

	return &SubmitMoveOutput{
		Accepted: true,
		Words:    lo.Map(formed, func(w words.Word, _ int) string { return w.Text }),
		Score:    score,
		Bingo:    bingo,
	}, nil
}

// SwapTiles exchanges rack tiles for fresh ones and ends the turn without
// scoring.
func (s *Session) SwapTiles(ctx context.Context, playerID string, tileIDs []int) (*SwapTilesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.requireTurn(playerID)
	if err != nil {
		return nil, err
	}
	if len(tileIDs) == 0 {
		return nil, ErrNoTilesPlaced
	}

	removed := make([]models.Tile, 0, len(tileIDs))
	seen := make(map[int]bool, len(tileIDs))
	for _, id := range tileIDs {
		tile := player.RackTile(id)
		if tile == nil || seen[id] {
			return nil, ErrTileNotInRack
		}
		seen[id] = true
		removed = append(removed, *tile)
	}

	// Reinsert at the far end first so the replacements cannot be the
	// same tiles unless the bag is nearly empty
	s.removeFromRack(player, tileIDs)
	s.bag.Return(removed)
	drawn := s.bag.Draw(len(removed))
	player.Rack = append(player.Rack, drawn...)

	player.InactiveTurns = 0
	player.Skipped = false
	s.passedTurns = 0

	s.broadcastGameUpdate(ctx)
	s.sendRack(ctx, player)
	if out, err := s.messaging.GetSwapMessage(ctx, &messaging.GetSwapMessageInput{
		PlayerName: player.Name,
		TileCount:  len(removed),
	}); err == nil {
		s.logLine(ctx, out.Message)
	}

	s.endTurn(ctx)

	return &SwapTilesOutput{Drawn: len(drawn)}, nil
}

// PassTurn ends the turn without scoring and advances the room-wide pass
// streak.
func (s *Session) PassTurn(ctx context.Context, playerID string) (*PassTurnOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.requireTurn(playerID)
	if err != nil {
		return nil, err
	}

	s.passedTurns++
	player.InactiveTurns = 0
	player.Skipped = false

	if out, err := s.messaging.GetPassMessage(ctx, &messaging.GetPassMessageInput{
		PlayerName: player.Name,
	}); err == nil {
		s.logLine(ctx, out.Message)
	}

	s.endTurn(ctx)

	return &PassTurnOutput{}, nil
}

// EndByHost terminates the game unconditionally, discarding any in-progress
// turn without scoring changes.
func (s *Session) EndByHost(ctx context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrGameNotActive
	}
	if playerID != s.hostID {
		return ErrNotHost
	}

	s.finish(ctx, delivery.EndReasonHostEnded)
	return nil
}

// MarkActive clears a player's inactivity state, restoring them to rotation
func (s *Session) MarkActive(ctx context.Context, hostID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrGameNotActive
	}
	if hostID != s.hostID {
		return ErrNotHost
	}

	player, ok := s.playerByID(playerID)
	if !ok {
		return ErrPlayerNotFound
	}

	player.InactiveTurns = 0
	player.Skipped = false
	s.broadcastGameUpdate(ctx)
	return nil
}

// RefreshData builds the reconnect snapshot for one player. Turn fields are
// nil while the session is on cooldown.
func (s *Session) RefreshData(userID string) (*RefreshData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrGameNotActive
	}

	data := &RefreshData{
		Board:    s.board.Clone(),
		BagCount: s.bag.Remaining(),
		Players:  s.playerViews(),
	}

	if player, ok := s.playerByID(userID); ok {
		data.Rack = append([]models.Tile{}, player.Rack...)
	}

	if !s.onCooldown {
		current := s.players[s.turnPlayerIndex]
		data.TurnPlayerID = &current.ID
		endTime := s.turnEndTime
		data.TurnEndTime = &endTime
		turnNumber := s.turnNumber
		data.TurnNumber = &turnNumber
	}

	return data, nil
}

// --- turn machinery ---

// requireTurn admits an action only from the current player of a live,
// non-cooldown turn.
func (s *Session) requireTurn(playerID string) (*models.Player, error) {
	if !s.active {
		return nil, ErrGameNotActive
	}
	if s.onCooldown {
		return nil, ErrTurnNotActive
	}

	player, ok := s.playerByID(playerID)
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if s.players[s.turnPlayerIndex].ID != playerID {
		return nil, ErrNotPlayersTurn
	}
	return player, nil
}

// startTurn opens the timed phase for the current player
func (s *Session) startTurn(ctx context.Context) {
	s.onCooldown = false
	current := s.players[s.turnPlayerIndex]
	s.turnEndTime = s.clock.Now().Add(s.settings.TurnDuration)

	// The captured turn number lets a timeout that lost the cancellation
	// race recognize itself as stale.
	turn := s.turnNumber
	s.turnTimer = s.scheduler.Schedule(s.settings.TurnDuration, func() {
		s.handleTurnTimeout(turn)
	})

	s.send(ctx, s.roomID, delivery.EventTurnStarted, delivery.TurnStartedPayload{
		PlayerID:   current.ID,
		PlayerName: current.Name,
		EndTime:    s.turnEndTime,
		TurnNumber: s.turnNumber,
	})
}

// endTurn is the single exit from a TurnActive phase: it cancels the turn
// timer, announces the turn's end, runs the end-game checks and, if the game
// goes on, archives state and schedules the cooldown.
func (s *Session) endTurn(ctx context.Context) {
	s.cancelTurnTimer()
	s.onCooldown = true

	s.send(ctx, s.roomID, delivery.EventTurnEnded, delivery.TurnEndedPayload{
		PlayerID:   s.players[s.turnPlayerIndex].ID,
		TurnNumber: s.turnNumber,
	})

	if s.checkGameEnd(ctx) {
		return
	}

	s.persist(ctx)
	s.beginCooldown(ctx)
}

func (s *Session) beginCooldown(ctx context.Context) {
	s.onCooldown = true
	s.cooldownTimer = s.scheduler.Schedule(s.cooldownDuration, func() {
		s.handleCooldownComplete()
	})
}

// handleCooldownComplete fires when the inter-turn delay elapses
func (s *Session) handleCooldownComplete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || !s.onCooldown {
		return // stale timer, the game moved on
	}

	ctx := context.Background()
	if !s.advanceTurn() {
		// Nobody is left to offer a turn to
		s.abort(ctx)
		return
	}
	s.startTurn(ctx)
}

// advanceTurn moves to the next player who can act, incrementing the turn
// number once per advance. Skipped players and players with empty racks are
// bypassed silently; a loop rather than recursion bounds the walk at one
// full rotation.
func (s *Session) advanceTurn() bool {
	for i := 0; i < len(s.players); i++ {
		s.turnPlayerIndex = (s.turnPlayerIndex + 1) % len(s.players)
		s.turnNumber++

		candidate := s.players[s.turnPlayerIndex]
		if candidate.Skipped || len(candidate.Rack) == 0 {
			continue
		}
		return true
	}
	return false
}

// handleTurnTimeout fires when the current player lets their timer expire
func (s *Session) handleTurnTimeout(turn int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.onCooldown || turn != s.turnNumber {
		return // stale timer, the turn already ended
	}

	ctx := context.Background()
	player := s.players[s.turnPlayerIndex]
	player.InactiveTurns++

	s.send(ctx, player.ID, delivery.EventTurnTimedOut, delivery.TurnTimedOutPayload{
		TurnNumber:    s.turnNumber,
		InactiveTurns: player.InactiveTurns,
	}, true)

	if player.InactiveTurns >= s.settings.TurnsUntilSkip && !player.Skipped {
		player.Skipped = true
		s.send(ctx, s.hostID, delivery.EventPlayerSkippable, delivery.PlayerSkippablePayload{
			Players: s.skippablePlayerViews(),
		}, true)
	}

	if out, err := s.messaging.GetTimeoutMessage(ctx, &messaging.GetTimeoutMessageInput{
		PlayerName: player.Name,
	}); err == nil {
		s.logLine(ctx, out.Message)
	}

	s.endTurn(ctx)
}

// --- end of game ---

// checkGameEnd evaluates the termination triggers in priority order after a
// turn completes. It reports whether the game ended.
func (s *Session) checkGameEnd(ctx context.Context) bool {
	// 1. Every player has hit the inactivity threshold: abort, no scoring
	allInactive := lo.EveryBy(s.players, func(p *models.Player) bool {
		return p.InactiveTurns >= s.settings.TurnsUntilSkip
	})
	if allInactive {
		s.abort(ctx)
		return true
	}

	// 2. Classic rack-out: the turn player finished with an empty rack
	current := s.players[s.turnPlayerIndex]
	if s.settings.GameEnd == models.GameEndClassic && len(current.Rack) == 0 {
		s.applyRackOutPenalties(current)
		s.finish(ctx, delivery.EndReasonRackOut)
		return true
	}

	// 3. All active players passed in a row
	activeCount := lo.CountBy(s.players, func(p *models.Player) bool {
		return !p.Skipped
	})
	if activeCount > 0 && s.passedTurns >= activeCount {
		s.finish(ctx, delivery.EndReasonAllPassed)
		return true
	}

	return false
}

// applyRackOutPenalties charges every other player the value of their own
// remaining rack and credits it to the player who racked out.
func (s *Session) applyRackOutPenalties(winner *models.Player) {
	for _, p := range s.players {
		if p.ID == winner.ID {
			continue
		}
		penalty := p.RackValue()
		p.Score -= penalty
		winner.Score += penalty
	}
}

// finish ends a scored game: final state is archived, the ranking is
// broadcast and the session removes itself from the registry.
func (s *Session) finish(ctx context.Context, reason delivery.GameEndReason) {
	s.stopTimers()
	s.active = false
	s.onCooldown = false

	s.persist(ctx)

	rankings := s.rankings()
	s.send(ctx, s.roomID, delivery.EventGameEnded, delivery.GameEndedPayload{
		Reason:   reason,
		Rankings: rankings,
	})
	if len(rankings) > 0 {
		if out, err := s.messaging.GetGameEndMessage(ctx, &messaging.GetGameEndMessageInput{
			WinnerName:  rankings[0].Name,
			WinnerScore: rankings[0].Score,
		}); err == nil {
			s.logLine(ctx, out.Message)
		}
	}

	s.registry.Remove(s.roomID)
	s.logger.Info().Str("room", s.roomID).Str("reason", string(reason)).Msg("game ended")
}

// abort discards the game without scoring or ranking
func (s *Session) abort(ctx context.Context) {
	s.stopTimers()
	s.active = false
	s.onCooldown = false

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{RoomID: s.roomID}); err != nil {
		s.logger.Warn().Err(err).Str("room", s.roomID).Msg("failed to delete aborted game")
	}

	s.send(ctx, s.roomID, delivery.EventGameEnded, delivery.GameEndedPayload{
		Reason: delivery.EndReasonAllInactive,
	})
	if out, err := s.messaging.GetGameEndMessage(ctx, &messaging.GetGameEndMessageInput{
		Aborted: true,
	}); err == nil {
		s.logLine(ctx, out.Message)
	}

	s.registry.Remove(s.roomID)
	s.logger.Info().Str("room", s.roomID).Msg("game aborted, all players inactive")
}

// stopTimers cancels both phase timers so a dead session can never wake up
// and mutate discarded state.
func (s *Session) stopTimers() {
	s.cancelTurnTimer()
	if s.cooldownTimer != nil {
		s.cooldownTimer.Stop()
		s.cooldownTimer = nil
	}
}

func (s *Session) cancelTurnTimer() {
	if s.turnTimer != nil {
		s.turnTimer.Stop()
		s.turnTimer = nil
	}
}

// --- move staging ---

// stagePlacements moves the placements onto the board without fixing them.
// Tiles stay in the rack until the move is accepted; the returned squares
// let a failed validation back everything out.
func (s *Session) stagePlacements(player *models.Player, placements []TilePlacement) ([]*models.Square, map[int]bool, error) {
	staged := make([]*models.Square, 0, len(placements))
	placedIDs := make(map[int]bool, len(placements))

	for _, placement := range placements {
		tile := player.RackTile(placement.TileID)
		if tile == nil || placedIDs[placement.TileID] {
			return staged, nil, ErrTileNotInRack
		}

		sq := s.board.At(placement.X, placement.Y)
		if sq == nil {
			return staged, nil, ErrSquareOutOfRange
		}
		if sq.Occupied() {
			return staged, nil, ErrSquareOccupied
		}

		placed := *tile
		if placed.IsBlank {
			if placement.BlankLetter == "" {
				return staged, nil, ErrBlankNeedsLetter
			}
			placed.Letter = placement.BlankLetter
		}

		sq.Content = &placed
		staged = append(staged, sq)
		placedIDs[placement.TileID] = true
	}

	return staged, placedIDs, nil
}

// unstage backs staged placements off the board
func (s *Session) unstage(staged []*models.Square) {
	for _, sq := range staged {
		sq.Content = nil
	}
}

func (s *Session) removeFromRack(player *models.Player, tileIDs []int) {
	remove := make(map[int]bool, len(tileIDs))
	for _, id := range tileIDs {
		remove[id] = true
	}
	player.Rack = lo.Filter(player.Rack, func(t models.Tile, _ int) bool {
		return !remove[t.ID]
	})
}

// --- snapshots and outbound traffic ---

func (s *Session) playerByID(id string) (*models.Player, bool) {
	return lo.Find(s.players, func(p *models.Player) bool {
		return p.ID == id
	})
}

func (s *Session) playerViews() []delivery.PlayerView {
	return lo.Map(s.players, func(p *models.Player, _ int) delivery.PlayerView {
		return delivery.PlayerView{
			ID:            p.ID,
			Name:          p.Name,
			Score:         p.Score,
			InactiveTurns: p.InactiveTurns,
			Skipped:       p.Skipped,
			RackCount:     len(p.Rack),
		}
	})
}

func (s *Session) skippablePlayerViews() []delivery.PlayerView {
	return lo.Filter(s.playerViews(), func(v delivery.PlayerView, _ int) bool {
		return v.Skipped
	})
}

// rankings returns the public player list ordered by score descending
func (s *Session) rankings() []delivery.PlayerView {
	ranked := s.playerViews()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// broadcastGameUpdate sends the room a snapshot of the board, bag count and
// public player list. The board is cloned so the payload never aliases live
// state.
func (s *Session) broadcastGameUpdate(ctx context.Context) {
	s.send(ctx, s.roomID, delivery.EventGameUpdated, delivery.GameUpdatedPayload{
		Board:    s.board.Clone(),
		BagCount: s.bag.Remaining(),
		Players:  s.playerViews(),
	})
}

// sendRack delivers a player's rack to that player only
func (s *Session) sendRack(ctx context.Context, player *models.Player) {
	s.send(ctx, player.ID, delivery.EventRackUpdated, delivery.RackUpdatedPayload{
		Rack: append([]models.Tile{}, player.Rack...),
	}, true)
}

func (s *Session) logLine(ctx context.Context, message string) {
	if message == "" {
		return
	}
	s.send(ctx, s.roomID, delivery.EventGameLog, delivery.GameLogPayload{Message: message})
}

func (s *Session) moveLogLine(ctx context.Context, player *models.Player, formed []words.Word, score int, bingo bool) string {
	out, err := s.messaging.GetMoveMessage(ctx, &messaging.GetMoveMessageInput{
		PlayerName: player.Name,
		Words:      lo.Map(formed, func(w words.Word, _ int) string { return w.Text }),
		Score:      score,
		Bingo:      bingo,
	})
	if err != nil {
		return ""
	}
	return out.Message
}

// send routes an event to the room or, when private, to a single user.
// Delivery failures are logged and never disturb the state machine.
func (s *Session) send(ctx context.Context, target string, event delivery.Event, payload any, private ...bool) {
	var err error
	if len(private) > 0 && private[0] {
		err = s.sender.SendToUser(ctx, target, event, payload)
	} else {
		err = s.sender.SendToRoom(ctx, target, event, payload)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("room", s.roomID).Str("event", string(event)).Msg("delivery failed")
	}
}

// persist archives the current state; failures are non-fatal because the
// authoritative state lives in memory for the session's lifetime.
func (s *Session) persist(ctx context.Context) {
	if err := s.gameRepo.UpdateGameState(ctx, &gameRepo.UpdateGameStateInput{Game: s.record()}); err != nil {
		s.logger.Warn().Err(err).Str("room", s.roomID).Msg("failed to archive game state")
	}
}

// record serializes the session into its persistence model. Players and
// board are deep-copied so the record never shares memory with live state.
func (s *Session) record() *models.Game {
	players := lo.Map(s.players, func(p *models.Player, _ int) *models.Player {
		cp := *p
		cp.Rack = append([]models.Tile{}, p.Rack...)
		return &cp
	})

	return &models.Game{
		ID:       s.gameID,
		RoomID:   s.roomID,
		HostID:   s.hostID,
		Players:  players,
		Settings: s.settings,
		State: models.GameState{
			TurnPlayerIndex: s.turnPlayerIndex,
			TurnEndTime:     s.turnEndTime,
			TurnNumber:      s.turnNumber,
			Board:           s.board.Clone(),
			LeftInBag:       s.bag.Remaining(),
			PassedTurns:     s.passedTurns,
			IsOnCooldown:    s.onCooldown,
		},
		CreatedAt: s.createdAt,
		UpdatedAt: s.clock.Now(),
	}
}
