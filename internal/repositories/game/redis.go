package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/scrawlgame/scrawl/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "game:"
	roomKeyPrefix  = "room:"
	activeGamesKey = "active_games"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateGame persists a newly started game and indexes it by room
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	return r.save(ctx, input.Game)
}

// UpdateGameState rewrites a game's record
func (r *redisRepository) UpdateGameState(ctx context.Context, input *UpdateGameStateInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	return r.save(ctx, input.Game)
}

func (r *redisRepository) save(ctx context.Context, game *models.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, game.ID)
	pipe.Set(ctx, gameKey, gameJSON, 0)

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, game.RoomID)
	pipe.Set(ctx, roomKey, game.ID, 0)

	pipe.SAdd(ctx, activeGamesKey, game.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game record by room ID
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	gameID, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for room: %w", err)
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &GetGameOutput{Game: &game}, nil
}

// DeleteGame removes a game record and its room index entry
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	out, err := r.GetGame(ctx, &GetGameInput{RoomID: input.RoomID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, out.Game.ID)
	pipe.Del(ctx, gameKey)

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	pipe.Del(ctx, roomKey)

	pipe.SRem(ctx, activeGamesKey, out.Game.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
