package models

// BonusType represents the score multiplier attached to a board square
type BonusType string

const (
	// BonusNone indicates a plain square
	BonusNone BonusType = ""

	// BonusDoubleLetter doubles the points of the letter placed on it
	BonusDoubleLetter BonusType = "doubleLetter"

	// BonusTripleLetter triples the points of the letter placed on it
	BonusTripleLetter BonusType = "tripleLetter"

	// BonusDoubleWord doubles the score of every word crossing it
	BonusDoubleWord BonusType = "doubleWord"

	// BonusTripleWord triples the score of every word crossing it
	BonusTripleWord BonusType = "tripleWord"
)

// BonusSquare places a bonus type at a board coordinate
type BonusSquare struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	BonusType BonusType `json:"bonusType"`
}

// Square is a single cell of the board grid
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`

	// BonusType is the square's multiplier, set once at board creation
	BonusType BonusType `json:"bonusType"`

	// Content is the tile occupying the square, nil while empty
	Content *Tile `json:"content,omitempty"`

	// Fixed is set when the tile becomes a permanent placement.
	// A fixed tile can never move or return to a rack.
	Fixed bool `json:"fixed"`
}

// Occupied reports whether a tile sits on the square
func (sq *Square) Occupied() bool {
	return sq.Content != nil
}

// Board is a fixed size x size grid of squares. It is created once per
// session and never resized.
type Board struct {
	Size    int        `json:"size"`
	Squares [][]Square `json:"squares"`
}

// NewBoard builds a size x size grid, annotating squares that match the
// bonus layout. All squares start unoccupied.
func NewBoard(size int, layout []BonusSquare) *Board {
	bonuses := make(map[[2]int]BonusType, len(layout))
	for _, b := range layout {
		bonuses[[2]int{b.X, b.Y}] = b.BonusType
	}

	squares := make([][]Square, size)
	for y := 0; y < size; y++ {
		squares[y] = make([]Square, size)
		for x := 0; x < size; x++ {
			squares[y][x] = Square{
				X:         x,
				Y:         y,
				BonusType: bonuses[[2]int{x, y}],
			}
		}
	}

	return &Board{
		Size:    size,
		Squares: squares,
	}
}

// At returns the square at (x, y), or nil when out of range
func (b *Board) At(x, y int) *Square {
	if x < 0 || y < 0 || x >= b.Size || y >= b.Size {
		return nil
	}
	return &b.Squares[y][x]
}

// FixedTileCount counts permanently placed tiles
func (b *Board) FixedTileCount() int {
	count := 0
	for y := range b.Squares {
		for x := range b.Squares[y] {
			if b.Squares[y][x].Fixed {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board. Tiles are copied by value so the
// clone never aliases the live grid.
func (b *Board) Clone() *Board {
	squares := make([][]Square, b.Size)
	for y := range b.Squares {
		squares[y] = make([]Square, b.Size)
		copy(squares[y], b.Squares[y])
		for x := range squares[y] {
			if b.Squares[y][x].Content != nil {
				tile := *b.Squares[y][x].Content
				squares[y][x].Content = &tile
			}
		}
	}
	return &Board{
		Size:    b.Size,
		Squares: squares,
	}
}

// DefaultBoardSize is the standard board edge length
const DefaultBoardSize = 15

// DefaultBonusLayout is the standard 15x15 bonus square arrangement
var DefaultBonusLayout = []BonusSquare{
	// Triple word score
	{X: 0, Y: 0, BonusType: BonusTripleWord},
	{X: 0, Y: 7, BonusType: BonusTripleWord},
	{X: 0, Y: 14, BonusType: BonusTripleWord},
	{X: 7, Y: 0, BonusType: BonusTripleWord},
	{X: 7, Y: 14, BonusType: BonusTripleWord},
	{X: 14, Y: 0, BonusType: BonusTripleWord},
	{X: 14, Y: 7, BonusType: BonusTripleWord},
	{X: 14, Y: 14, BonusType: BonusTripleWord},

	// Double word score
	{X: 1, Y: 1, BonusType: BonusDoubleWord},
	{X: 2, Y: 2, BonusType: BonusDoubleWord},
	{X: 3, Y: 3, BonusType: BonusDoubleWord},
	{X: 4, Y: 4, BonusType: BonusDoubleWord},
	{X: 7, Y: 7, BonusType: BonusDoubleWord},
	{X: 10, Y: 10, BonusType: BonusDoubleWord},
	{X: 11, Y: 11, BonusType: BonusDoubleWord},
	{X: 12, Y: 12, BonusType: BonusDoubleWord},
	{X: 13, Y: 13, BonusType: BonusDoubleWord},
	{X: 1, Y: 13, BonusType: BonusDoubleWord},
	{X: 2, Y: 12, BonusType: BonusDoubleWord},
	{X: 3, Y: 11, BonusType: BonusDoubleWord},
	{X: 4, Y: 10, BonusType: BonusDoubleWord},
	{X: 10, Y: 4, BonusType: BonusDoubleWord},
	{X: 11, Y: 3, BonusType: BonusDoubleWord},
	{X: 12, Y: 2, BonusType: BonusDoubleWord},
	{X: 13, Y: 1, BonusType: BonusDoubleWord},

	// Triple letter score
	{X: 1, Y: 5, BonusType: BonusTripleLetter},
	{X: 1, Y: 9, BonusType: BonusTripleLetter},
	{X: 5, Y: 1, BonusType: BonusTripleLetter},
	{X: 5, Y: 5, BonusType: BonusTripleLetter},
	{X: 5, Y: 9, BonusType: BonusTripleLetter},
	{X: 5, Y: 13, BonusType: BonusTripleLetter},
	{X: 9, Y: 1, BonusType: BonusTripleLetter},
	{X: 9, Y: 5, BonusType: BonusTripleLetter},
	{X: 9, Y: 9, BonusType: BonusTripleLetter},
	{X: 9, Y: 13, BonusType: BonusTripleLetter},
	{X: 13, Y: 5, BonusType: BonusTripleLetter},
	{X: 13, Y: 9, BonusType: BonusTripleLetter},

	// Double letter score
	{X: 0, Y: 3, BonusType: BonusDoubleLetter},
	{X: 0, Y: 11, BonusType: BonusDoubleLetter},
	{X: 2, Y: 6, BonusType: BonusDoubleLetter},
	{X: 2, Y: 8, BonusType: BonusDoubleLetter},
	{X: 3, Y: 0, BonusType: BonusDoubleLetter},
	{X: 3, Y: 7, BonusType: BonusDoubleLetter},
	{X: 3, Y: 14, BonusType: BonusDoubleLetter},
	{X: 6, Y: 2, BonusType: BonusDoubleLetter},
	{X: 6, Y: 6, BonusType: BonusDoubleLetter},
	{X: 6, Y: 8, BonusType: BonusDoubleLetter},
	{X: 6, Y: 12, BonusType: BonusDoubleLetter},
	{X: 7, Y: 3, BonusType: BonusDoubleLetter},
	{X: 7, Y: 11, BonusType: BonusDoubleLetter},
	{X: 8, Y: 2, BonusType: BonusDoubleLetter},
	{X: 8, Y: 6, BonusType: BonusDoubleLetter},
	{X: 8, Y: 8, BonusType: BonusDoubleLetter},
	{X: 8, Y: 12, BonusType: BonusDoubleLetter},
	{X: 11, Y: 0, BonusType: BonusDoubleLetter},
	{X: 11, Y: 7, BonusType: BonusDoubleLetter},
	{X: 11, Y: 14, BonusType: BonusDoubleLetter},
	{X: 12, Y: 6, BonusType: BonusDoubleLetter},
	{X: 12, Y: 8, BonusType: BonusDoubleLetter},
	{X: 14, Y: 3, BonusType: BonusDoubleLetter},
	{X: 14, Y: 11, BonusType: BonusDoubleLetter},
}
