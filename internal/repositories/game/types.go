package game

import "github.com/scrawlgame/scrawl/internal/models"

type CreateGameInput struct {
	Game *models.Game
}

type UpdateGameStateInput struct {
	Game *models.Game
}

type GetGameInput struct {
	RoomID string
}

type GetGameOutput struct {
	Game *models.Game
}

type DeleteGameInput struct {
	RoomID string
}
