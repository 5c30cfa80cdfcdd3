package game

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/scrawlgame/scrawl/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testGame() *models.Game {
	return &models.Game{
		ID:     "test-game-id",
		RoomID: "test-room-id",
		HostID: "test-host-id",
		Players: []*models.Player{
			{
				ID:   "test-player-id",
				Name: "Test Player",
				Rack: []models.Tile{
					{ID: 3, Letter: "A", Points: 1},
					{ID: 9, Letter: "Q", Points: 10},
				},
				Score: 42,
			},
		},
		Settings: models.GameSettings{
			TurnDuration:   90 * time.Second,
			TurnsUntilSkip: 3,
			RackSize:       7,
			GameEnd:        models.GameEndClassic,
			BingoBonus:     true,
		},
		State: models.GameState{
			TurnPlayerIndex: 0,
			TurnEndTime:     s.testNow.Add(90 * time.Second),
			TurnNumber:      5,
			Board:           models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout),
			LeftInBag:       80,
			PassedTurns:     1,
			IsOnCooldown:    false,
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetGame() {
	game := s.testGame()
	game.State.Board.Squares[7][7].Content = &models.Tile{ID: 1, Letter: "C", Points: 3}
	game.State.Board.Squares[7][7].Fixed = true

	err := s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game})
	s.Require().NoError(err)

	out, err := s.repo.GetGame(context.Background(), &GetGameInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Game)

	s.Equal("test-game-id", out.Game.ID)
	s.Equal("test-room-id", out.Game.RoomID)
	s.Equal("test-host-id", out.Game.HostID)
	s.Len(out.Game.Players, 1)
	s.Equal(42, out.Game.Players[0].Score)
	s.Len(out.Game.Players[0].Rack, 2)
	s.Equal(5, out.Game.State.TurnNumber)
	s.Equal(80, out.Game.State.LeftInBag)

	// Board round-trips with the fixed flag intact
	sq := out.Game.State.Board.At(7, 7)
	s.Require().NotNil(sq.Content)
	s.Equal("C", sq.Content.Letter)
	s.True(sq.Fixed)
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{RoomID: "nope"})
	s.Require().Error(err)
	s.Equal(ErrGameNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameState() {
	game := s.testGame()

	err := s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game})
	s.Require().NoError(err)

	game.State.TurnNumber = 6
	game.State.TurnPlayerIndex = 1
	game.Players[0].Score = 57
	game.UpdatedAt = s.testNow.Add(time.Minute)

	err = s.repo.UpdateGameState(context.Background(), &UpdateGameStateInput{Game: game})
	s.Require().NoError(err)

	out, err := s.repo.GetGame(context.Background(), &GetGameInput{RoomID: "test-room-id"})
	s.Require().NoError(err)
	s.Equal(6, out.Game.State.TurnNumber)
	s.Equal(1, out.Game.State.TurnPlayerIndex)
	s.Equal(57, out.Game.Players[0].Score)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := s.testGame()

	err := s.repo.CreateGame(context.Background(), &CreateGameInput{Game: game})
	s.Require().NoError(err)

	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{RoomID: "test-room-id"})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{RoomID: "test-room-id"})
	s.Require().Error(err)
	s.Equal(ErrGameNotFound, err)

	// Deleting again reports not found rather than succeeding silently
	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{RoomID: "test-room-id"})
	s.Equal(ErrGameNotFound, err)
}
