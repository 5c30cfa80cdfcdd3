package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random phrasings
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetMoveMessage returns a log line for an accepted move
func (s *service) GetMoveMessage(ctx context.Context, input *GetMoveMessageInput) (*GetMoveMessageOutput, error) {
	wordList := strings.Join(input.Words, ", ")

	var messages []string
	if input.Bingo {
		messages = []string{
			"%s emptied their whole rack on %s for %d points. Bingo!",
			"Full rack! %s played %s and banked %d points.",
			"%s went all in with %s, %d points including the bonus.",
		}
	} else {
		messages = []string{
			"%s played %s for %d points.",
			"%s put down %s, good for %d points.",
			"%s spelled out %s and scored %d points.",
		}
	}

	selected := messages[s.rand.Intn(len(messages))]

	return &GetMoveMessageOutput{
		Message: fmt.Sprintf(selected, input.PlayerName, wordList, input.Score),
	}, nil
}

// GetPassMessage returns a log line for a passed turn
func (s *service) GetPassMessage(ctx context.Context, input *GetPassMessageInput) (*GetPassMessageOutput, error) {
	messages := []string{
		"%s passed their turn.",
		"%s is holding on to their tiles this round.",
		"Nothing from %s this turn.",
	}

	selected := messages[s.rand.Intn(len(messages))]

	return &GetPassMessageOutput{
		Message: fmt.Sprintf(selected, input.PlayerName),
	}, nil
}

// GetSwapMessage returns a log line for a tile exchange
func (s *service) GetSwapMessage(ctx context.Context, input *GetSwapMessageInput) (*GetSwapMessageOutput, error) {
	messages := []string{
		"%s swapped %d tiles and ended their turn.",
		"%s traded in %d tiles for fresh ones.",
		"%s didn't like their letters, %d tiles back in the bag.",
	}

	selected := messages[s.rand.Intn(len(messages))]

	return &GetSwapMessageOutput{
		Message: fmt.Sprintf(selected, input.PlayerName, input.TileCount),
	}, nil
}

// GetTimeoutMessage returns a log line for a timed-out turn
func (s *service) GetTimeoutMessage(ctx context.Context, input *GetTimeoutMessageInput) (*GetTimeoutMessageOutput, error) {
	messages := []string{
		"%s ran out of time.",
		"The clock beat %s this turn.",
		"%s let the timer run down, turn over.",
	}

	selected := messages[s.rand.Intn(len(messages))]

	return &GetTimeoutMessageOutput{
		Message: fmt.Sprintf(selected, input.PlayerName),
	}, nil
}

// GetGameEndMessage returns a log line for a finished game
func (s *service) GetGameEndMessage(ctx context.Context, input *GetGameEndMessageInput) (*GetGameEndMessageOutput, error) {
	if input.Aborted {
		messages := []string{
			"The game was called off, nobody was still playing.",
			"Game over: the room went quiet and the board was packed away.",
		}
		return &GetGameEndMessageOutput{
			Message: messages[s.rand.Intn(len(messages))],
		}, nil
	}

	messages := []string{
		"Game over! %s takes it with %d points.",
		"That's the end, %s wins on %d points.",
		"Final score: %s on top with %d points.",
	}

	selected := messages[s.rand.Intn(len(messages))]

	return &GetGameEndMessageOutput{
		Message: fmt.Sprintf(selected, input.WinnerName, input.WinnerScore),
	}, nil
}
