// Package words derives and scores the words formed on a board by a move.
package words

import (
	"strings"

	"github.com/scrawlgame/scrawl/internal/models"
)

// Word is a maximal contiguous run of occupied squares that a move
// contributed to.
type Word struct {
	// Text is the concatenation of each square's tile letter
	Text string

	// Squares are the run's cells in reading order
	Squares []*models.Square
}

// Extract scans every row left-to-right, then every column top-to-bottom,
// collecting maximal runs of occupied squares. A run is a candidate word
// only when it is at least two tiles long and contains at least one newly
// placed tile; pre-existing runs the move did not touch are not revalidated.
// Horizontal words come first in row-major order, then vertical words in
// column-major order.
func Extract(board *models.Board, placedIDs map[int]bool) []Word {
	var found []Word

	for y := 0; y < board.Size; y++ {
		found = appendRuns(found, board, placedIDs, func(i int) *models.Square {
			return board.At(i, y)
		})
	}
	for x := 0; x < board.Size; x++ {
		found = appendRuns(found, board, placedIDs, func(i int) *models.Square {
			return board.At(x, i)
		})
	}

	return found
}

// appendRuns walks one line of squares and appends its candidate words
func appendRuns(found []Word, board *models.Board, placedIDs map[int]bool, at func(i int) *models.Square) []Word {
	var run []*models.Square
	for i := 0; i <= board.Size; i++ {
		var sq *models.Square
		if i < board.Size {
			sq = at(i)
		}
		if sq != nil && sq.Occupied() {
			run = append(run, sq)
			continue
		}
		if word, ok := candidate(run, placedIDs); ok {
			found = append(found, word)
		}
		run = nil
	}
	return found
}

// candidate turns a run into a word when it is long enough and the move
// contributed a tile to it
func candidate(run []*models.Square, placedIDs map[int]bool) (Word, bool) {
	if len(run) < 2 {
		return Word{}, false
	}

	contributed := false
	var text strings.Builder
	for _, sq := range run {
		if placedIDs[sq.Content.ID] {
			contributed = true
		}
		text.WriteString(sq.Content.Letter)
	}
	if !contributed {
		return Word{}, false
	}

	return Word{
		Text:    text.String(),
		Squares: run,
	}, true
}

// Score computes one word's value: the sum of letter points with letter
// bonuses applied, multiplied by any word bonuses. Bonus squares only count
// for tiles placed this move; tiles fixed by earlier moves contribute face
// value.
func Score(word Word, placedIDs map[int]bool) int {
	total := 0
	multiplier := 1

	for _, sq := range word.Squares {
		points := sq.Content.Points
		if placedIDs[sq.Content.ID] {
			switch sq.BonusType {
			case models.BonusDoubleLetter:
				points *= 2
			case models.BonusTripleLetter:
				points *= 3
			case models.BonusDoubleWord:
				multiplier *= 2
			case models.BonusTripleWord:
				multiplier *= 3
			}
		}
		total += points
	}

	return total * multiplier
}
