// Package tilebag implements the shuffled pool of undrawn tiles.
package tilebag

import (
	"math/rand"
	"time"

	"github.com/scrawlgame/scrawl/internal/models"
)

// Bag holds the session's not-yet-drawn tiles in shuffled order. Draws pop
// from the end; exchanged tiles are reinserted at the front so a player
// cannot immediately redraw what they just gave back.
type Bag struct {
	tiles        []models.Tile
	totalCreated int
}

// Config for the bag's random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New expands the letter distribution into individual tiles with sequential
// unique ids and applies a uniform Fisher-Yates shuffle.
func New(cfg *Config, distribution []models.LetterCount) *Bag {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	random := rand.New(rand.NewSource(seed))

	var tiles []models.Tile
	nextID := 0
	for _, entry := range distribution {
		for i := 0; i < entry.Count; i++ {
			tiles = append(tiles, models.Tile{
				ID:      nextID,
				Letter:  entry.Letter,
				Points:  entry.Points,
				IsBlank: entry.Letter == "",
			})
			nextID++
		}
	}

	// Fisher-Yates: every permutation equally likely
	for i := len(tiles) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}

	return &Bag{
		tiles:        tiles,
		totalCreated: len(tiles),
	}
}

// Draw removes up to n tiles from the end of the bag. It returns fewer than
// n tiles, possibly none, when the bag is exhausted; exhaustion is not an
// error.
func (b *Bag) Draw(n int) []models.Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	if n <= 0 {
		return nil
	}

	drawn := make([]models.Tile, n)
	cut := len(b.tiles) - n
	copy(drawn, b.tiles[cut:])
	b.tiles = b.tiles[:cut]
	return drawn
}

// Return reinserts exchanged tiles at the opposite end from which draws
// occur.
func (b *Bag) Return(tiles []models.Tile) {
	if len(tiles) == 0 {
		return
	}
	b.tiles = append(append([]models.Tile{}, tiles...), b.tiles...)
}

// Remaining reports how many tiles are left in the bag
func (b *Bag) Remaining() int {
	return len(b.tiles)
}

// TotalCreated reports how many tiles the bag was created with
func (b *Bag) TotalCreated() int {
	return b.totalCreated
}
