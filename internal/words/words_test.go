package words

import (
	"testing"

	"github.com/scrawlgame/scrawl/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var letterPoints = map[string]int{
	"A": 1, "C": 3, "E": 1, "H": 4, "R": 1, "S": 1, "T": 1,
}

// place puts a tile on the board. Fixed marks a placement from an earlier
// move.
func place(t *testing.T, board *models.Board, x, y int, letter string, id int, fixed bool) {
	t.Helper()
	sq := board.At(x, y)
	require.NotNil(t, sq)
	require.False(t, sq.Occupied())
	sq.Content = &models.Tile{ID: id, Letter: letter, Points: letterPoints[letter]}
	sq.Fixed = fixed
}

func placed(ids ...int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestExtractSingleHorizontalWord(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	place(t, board, 7, 7, "C", 1, false)
	place(t, board, 8, 7, "A", 2, false)
	place(t, board, 9, 7, "T", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 1)
	assert.Equal(t, "CAT", found[0].Text)
}

func TestExtractIgnoresSingleTileRuns(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	place(t, board, 7, 7, "C", 1, false)

	assert.Empty(t, Extract(board, placed(1)))
}

func TestExtractIgnoresUntouchedRuns(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	// Pre-existing word from an earlier move
	place(t, board, 2, 2, "A", 10, true)
	place(t, board, 3, 2, "T", 11, true)
	// New word elsewhere
	place(t, board, 7, 7, "C", 1, false)
	place(t, board, 8, 7, "A", 2, false)
	place(t, board, 9, 7, "T", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 1)
	assert.Equal(t, "CAT", found[0].Text)
}

func TestExtractHorizontalBeforeVertical(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	// Existing HAT across row 6
	place(t, board, 7, 6, "H", 10, true)
	place(t, board, 8, 6, "A", 11, true)
	place(t, board, 9, 6, "T", 12, true)
	// New move: CAT across row 7, whose C extends nothing but whose A
	// forms AA vertically under HAT's A
	place(t, board, 7, 7, "C", 1, false)
	place(t, board, 8, 7, "A", 2, false)
	place(t, board, 9, 7, "T", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 4)
	assert.Equal(t, "CAT", found[0].Text)
	assert.Equal(t, "HC", found[1].Text)
	assert.Equal(t, "AA", found[2].Text)
	assert.Equal(t, "TT", found[3].Text)
}

func TestExtractBlankContributesAssignedLetter(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	place(t, board, 7, 7, "C", 1, false)
	sq := board.At(8, 7)
	sq.Content = &models.Tile{ID: 2, Letter: "A", Points: 0, IsBlank: true}
	place(t, board, 9, 7, "T", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 1)
	assert.Equal(t, "CAT", found[0].Text)
}

func TestScoreDoubleWordCenter(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	// Center square (7,7) is a double word bonus
	place(t, board, 7, 7, "C", 1, false)
	place(t, board, 8, 7, "A", 2, false)
	place(t, board, 9, 7, "T", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 1)
	assert.Equal(t, (3+1+1)*2, Score(found[0], placed(1, 2, 3)))
}

func TestScoreLetterBonus(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	// (2,6) is a double letter square; (3,6) and (4,6) are plain
	place(t, board, 2, 6, "C", 1, false)
	place(t, board, 3, 6, "A", 2, false)
	place(t, board, 4, 6, "T", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 1)
	assert.Equal(t, 3*2+1+1, Score(found[0], placed(1, 2, 3)))
}

func TestScoreIgnoresBonusUnderFixedTile(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	// CA fixed from an earlier move, C sitting on the center double word
	place(t, board, 7, 7, "C", 10, true)
	place(t, board, 8, 7, "A", 11, true)
	// New tile extends it to CAT
	place(t, board, 9, 7, "T", 1, false)

	found := Extract(board, placed(1))
	require.Len(t, found, 1)
	// The double word under the fixed C must not fire again
	assert.Equal(t, 3+1+1, Score(found[0], placed(1)))
}

func TestScoreBlankIsZeroPoints(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	place(t, board, 7, 7, "C", 1, false)
	sq := board.At(8, 7)
	sq.Content = &models.Tile{ID: 2, Letter: "A", Points: 0, IsBlank: true}
	place(t, board, 9, 7, "T", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 1)
	assert.Equal(t, (3+0+1)*2, Score(found[0], placed(1, 2, 3)))
}

func TestExtractVerticalWordText(t *testing.T) {
	board := models.NewBoard(models.DefaultBoardSize, models.DefaultBonusLayout)
	place(t, board, 4, 5, "S", 1, false)
	place(t, board, 4, 6, "E", 2, false)
	place(t, board, 4, 7, "A", 3, false)

	found := Extract(board, placed(1, 2, 3))
	require.Len(t, found, 1)
	assert.Equal(t, "SEA", found[0].Text)
	// Top-to-bottom reading order
	assert.Equal(t, 5, found[0].Squares[0].Y)
	assert.Equal(t, 7, found[0].Squares[2].Y)
}
