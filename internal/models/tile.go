package models

// Tile represents a single letter tile
type Tile struct {
	// ID is unique within one session's bag, racks and board
	ID int `json:"id"`

	// Letter is the tile's letter; empty for an unassigned blank
	Letter string `json:"letter"`

	// Points is the tile's face value
	Points int `json:"points"`

	// IsBlank marks a wildcard tile; blanks always score zero
	IsBlank bool `json:"isBlank"`
}

// LetterCount describes one entry of a tile bag distribution
type LetterCount struct {
	// Letter is the letter to generate tiles for; empty means blank
	Letter string `json:"letter"`

	// Count is how many tiles of this letter the bag contains
	Count int `json:"count"`

	// Points is the face value of each generated tile
	Points int `json:"points"`
}

// DefaultLetterDistribution is the standard English 102-tile set
var DefaultLetterDistribution = []LetterCount{
	{Letter: "", Count: 2, Points: 0},
	{Letter: "E", Count: 12, Points: 1},
	{Letter: "A", Count: 9, Points: 1},
	{Letter: "I", Count: 9, Points: 1},
	{Letter: "O", Count: 8, Points: 1},
	{Letter: "N", Count: 6, Points: 1},
	{Letter: "R", Count: 6, Points: 1},
	{Letter: "T", Count: 6, Points: 1},
	{Letter: "L", Count: 4, Points: 1},
	{Letter: "S", Count: 4, Points: 1},
	{Letter: "U", Count: 4, Points: 1},
	{Letter: "D", Count: 4, Points: 2},
	{Letter: "G", Count: 3, Points: 2},
	{Letter: "B", Count: 2, Points: 3},
	{Letter: "C", Count: 2, Points: 3},
	{Letter: "M", Count: 2, Points: 3},
	{Letter: "P", Count: 2, Points: 3},
	{Letter: "F", Count: 2, Points: 4},
	{Letter: "H", Count: 2, Points: 4},
	{Letter: "V", Count: 2, Points: 4},
	{Letter: "W", Count: 2, Points: 4},
	{Letter: "Y", Count: 2, Points: 4},
	{Letter: "K", Count: 1, Points: 5},
	{Letter: "J", Count: 1, Points: 8},
	{Letter: "X", Count: 1, Points: 8},
	{Letter: "Q", Count: 1, Points: 10},
	{Letter: "Z", Count: 1, Points: 10},
}
