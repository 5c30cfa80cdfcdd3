package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/scrawlgame/scrawl/internal/delivery"
	"github.com/scrawlgame/scrawl/internal/models"
	"github.com/scrawlgame/scrawl/internal/services/session"
)

// HandlerError wraps ws handler configuration errors
type HandlerError string

func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig   = HandlerError("config cannot be nil")
	ErrNilSessions = HandlerError("session service cannot be nil")
	ErrNilHub      = HandlerError("hub cannot be nil")
)

// inbound actions
const (
	actionStartGame  = "startGame"
	actionSubmitMove = "submitMove"
	actionSwapTiles  = "swapTiles"
	actionPassTurn   = "passTurn"
	actionEndGame    = "endGame"
	actionMarkActive = "markPlayerActive"
	actionReconnect  = "reconnect"
)

// eventActionError reports a rejected action back to its sender only
const eventActionError delivery.Event = "actionError"

// eventGameState carries the reconnect snapshot to its requester only
const eventGameState delivery.Event = "gameState"

// actionFrame is the inbound message format
type actionFrame struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

type startGamePayload struct {
	Players  []session.PlayerInfo `json:"players"`
	Settings gameSettingsPayload  `json:"settings"`
}

// gameSettingsPayload is the client's ruleset with durations in seconds.
// BingoBonus is a pointer so an absent field means on, not off.
type gameSettingsPayload struct {
	TurnDurationSeconds int                `json:"turnDurationSeconds"`
	TurnsUntilSkip      int                `json:"turnsUntilSkip"`
	RackSize            int                `json:"rackSize"`
	GameEnd             models.GameEndMode `json:"gameEnd"`
	BingoBonus          *bool              `json:"bingoBonus"`
}

func (p gameSettingsPayload) toSettings() models.GameSettings {
	settings := models.GameSettings{
		TurnDuration:   time.Duration(p.TurnDurationSeconds) * time.Second,
		TurnsUntilSkip: p.TurnsUntilSkip,
		RackSize:       p.RackSize,
		GameEnd:        p.GameEnd,
		BingoBonus:     true,
	}
	if p.BingoBonus != nil {
		settings.BingoBonus = *p.BingoBonus
	}
	return settings
}

type submitMovePayload struct {
	Placements []session.TilePlacement `json:"placements"`
}

type swapTilesPayload struct {
	TileIDs []int `json:"tileIds"`
}

type markActivePayload struct {
	PlayerID string `json:"playerId"`
}

type actionErrorPayload struct {
	Action string `json:"action"`
	Error  string `json:"error"`
}

// HandlerConfig holds the dependencies for the ws handler
type HandlerConfig struct {
	Sessions session.Service
	Hub      *Hub
	Logger   zerolog.Logger
}

// Handler upgrades connections and routes inbound action frames to the
// session service.
type Handler struct {
	sessions session.Service
	hub      *Hub
	logger   zerolog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a new ws handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}
	if cfg.Hub == nil {
		return nil, ErrNilHub
	}

	return &Handler{
		sessions: cfg.Sessions,
		hub:      cfg.Hub,
		logger:   cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}, nil
}

// Register mounts the websocket endpoint on the router
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/ws", h.handleConnection)
}

// handleConnection upgrades the request and runs the connection's read loop
func (h *Handler) handleConnection(c *gin.Context) {
	roomID := c.Query("room")
	userID := c.Query("user")
	if roomID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room and user are required"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &client{
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
		roomID: roomID,
		userID: userID,
	}
	h.hub.register(client)
	go client.writePump()

	h.logger.Info().Str("room", roomID).Str("user", userID).Msg("client connected")
	h.readLoop(client)
	h.hub.unregister(client)
	h.logger.Info().Str("room", roomID).Str("user", userID).Msg("client disconnected")
}

func (h *Handler) readLoop(c *client) {
	c.conn.SetReadLimit(maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var frame actionFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.logger.Debug().Err(err).Str("user", c.userID).Msg("unreadable frame")
			continue
		}

		h.dispatch(c, frame)
	}
}

// dispatch routes one action frame. Stale actions, the ones a client fires
// after its turn already ended, are dropped without a reply; everything else
// that fails gets an actionError frame back.
func (h *Handler) dispatch(c *client, frame actionFrame) {
	ctx := context.Background()

	var err error
	switch frame.Action {
	case actionStartGame:
		err = h.startGame(ctx, c, frame.Payload)
	case actionSubmitMove:
		err = h.submitMove(ctx, c, frame.Payload)
	case actionSwapTiles:
		err = h.swapTiles(ctx, c, frame.Payload)
	case actionPassTurn:
		_, err = h.sessions.PassTurn(ctx, &session.PassTurnInput{
			RoomID:   c.roomID,
			PlayerID: c.userID,
		})
	case actionEndGame:
		_, err = h.sessions.EndGame(ctx, &session.EndGameInput{
			RoomID:   c.roomID,
			PlayerID: c.userID,
		})
	case actionMarkActive:
		err = h.markActive(ctx, c, frame.Payload)
	case actionReconnect:
		err = h.reconnect(ctx, c)
	default:
		h.logger.Debug().Str("action", frame.Action).Str("user", c.userID).Msg("unknown action")
		return
	}

	if err == nil {
		return
	}
	if isStaleAction(err) {
		h.logger.Debug().Err(err).Str("action", frame.Action).Str("user", c.userID).Msg("stale action dropped")
		return
	}

	h.logger.Debug().Err(err).Str("action", frame.Action).Str("user", c.userID).Msg("action rejected")
	if sendErr := h.hub.SendToUser(ctx, c.userID, eventActionError, actionErrorPayload{
		Action: frame.Action,
		Error:  err.Error(),
	}); sendErr != nil {
		h.logger.Warn().Err(sendErr).Str("user", c.userID).Msg("failed to report action error")
	}
}

// isStaleAction reports whether the failure is the ordinary result of a
// client racing the turn clock rather than a real fault.
func isStaleAction(err error) bool {
	return errors.Is(err, session.ErrNotPlayersTurn) || errors.Is(err, session.ErrTurnNotActive)
}

func (h *Handler) startGame(ctx context.Context, c *client, raw json.RawMessage) error {
	var payload startGamePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	_, err := h.sessions.StartGame(ctx, &session.StartGameInput{
		RoomID:   c.roomID,
		HostID:   c.userID,
		Players:  payload.Players,
		Settings: payload.Settings.toSettings(),
	})
	return err
}

func (h *Handler) submitMove(ctx context.Context, c *client, raw json.RawMessage) error {
	var payload submitMovePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	_, err := h.sessions.SubmitMove(ctx, &session.SubmitMoveInput{
		RoomID:     c.roomID,
		PlayerID:   c.userID,
		Placements: payload.Placements,
	})
	return err
}

func (h *Handler) swapTiles(ctx context.Context, c *client, raw json.RawMessage) error {
	var payload swapTilesPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	_, err := h.sessions.SwapTiles(ctx, &session.SwapTilesInput{
		RoomID:   c.roomID,
		PlayerID: c.userID,
		TileIDs:  payload.TileIDs,
	})
	return err
}

func (h *Handler) markActive(ctx context.Context, c *client, raw json.RawMessage) error {
	var payload markActivePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	_, err := h.sessions.MarkPlayerActive(ctx, &session.MarkPlayerActiveInput{
		RoomID:   c.roomID,
		HostID:   c.userID,
		PlayerID: payload.PlayerID,
	})
	return err
}

func (h *Handler) reconnect(ctx context.Context, c *client) error {
	out, err := h.sessions.Reconnect(ctx, &session.ReconnectInput{
		RoomID: c.roomID,
		UserID: c.userID,
	})
	if err != nil {
		return err
	}
	return h.hub.SendToUser(ctx, c.userID, eventGameState, out.Snapshot)
}
