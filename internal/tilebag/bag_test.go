package tilebag

import (
	"testing"

	"github.com/scrawlgame/scrawl/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDistribution = []models.LetterCount{
	{Letter: "A", Count: 3, Points: 1},
	{Letter: "B", Count: 2, Points: 3},
	{Letter: "", Count: 1, Points: 0},
}

func TestNewAssignsSequentialUniqueIDs(t *testing.T) {
	bag := New(&Config{Seed: 42}, testDistribution)

	require.Equal(t, 6, bag.TotalCreated())
	require.Equal(t, 6, bag.Remaining())

	seen := make(map[int]bool)
	for _, tile := range bag.Draw(6) {
		assert.False(t, seen[tile.ID], "duplicate tile id %d", tile.ID)
		assert.GreaterOrEqual(t, tile.ID, 0)
		assert.Less(t, tile.ID, 6)
		seen[tile.ID] = true
	}
	assert.Len(t, seen, 6)
}

func TestNewMarksBlanks(t *testing.T) {
	bag := New(&Config{Seed: 1}, testDistribution)

	blanks := 0
	for _, tile := range bag.Draw(6) {
		if tile.IsBlank {
			blanks++
			assert.Empty(t, tile.Letter)
			assert.Zero(t, tile.Points)
		}
	}
	assert.Equal(t, 1, blanks)
}

func TestDrawReturnsShortOnExhaustion(t *testing.T) {
	bag := New(&Config{Seed: 7}, testDistribution)

	first := bag.Draw(4)
	require.Len(t, first, 4)

	// Only two tiles left; asking for four is not an error
	second := bag.Draw(4)
	assert.Len(t, second, 2)
	assert.Equal(t, 0, bag.Remaining())

	third := bag.Draw(1)
	assert.Empty(t, third)
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a := New(&Config{Seed: 99}, testDistribution)
	b := New(&Config{Seed: 99}, testDistribution)

	assert.Equal(t, a.Draw(6), b.Draw(6))
}

func TestShuffleProducesAllOrderings(t *testing.T) {
	// Three distinct tiles have six orderings; over many seeds each one
	// should come up.
	distribution := []models.LetterCount{
		{Letter: "A", Count: 1, Points: 1},
		{Letter: "B", Count: 1, Points: 1},
		{Letter: "C", Count: 1, Points: 1},
	}

	orderings := make(map[string]int)
	const trials = 3000
	for seed := int64(1); seed <= trials; seed++ {
		bag := New(&Config{Seed: seed}, distribution)
		key := ""
		for _, tile := range bag.Draw(3) {
			key += tile.Letter
		}
		orderings[key]++
	}

	require.Len(t, orderings, 6)
	for key, count := range orderings {
		// Uniform expectation is trials/6 = 500; allow a generous band
		assert.Greater(t, count, 350, "ordering %s underrepresented", key)
		assert.Less(t, count, 650, "ordering %s overrepresented", key)
	}
}

func TestReturnInsertsAtOppositeEnd(t *testing.T) {
	bag := New(&Config{Seed: 5}, testDistribution)

	exchanged := bag.Draw(2)
	require.Len(t, exchanged, 2)
	require.Equal(t, 4, bag.Remaining())

	bag.Return(exchanged)
	require.Equal(t, 6, bag.Remaining())

	// The returned tiles went to the front, so drawing the four tiles
	// that were already in the bag must not produce them.
	redrawn := bag.Draw(4)
	for _, tile := range redrawn {
		for _, ex := range exchanged {
			assert.NotEqual(t, ex.ID, tile.ID, "exchanged tile redrawn immediately")
		}
	}

	// Only now do the exchanged tiles come back out
	rest := bag.Draw(2)
	require.Len(t, rest, 2)
	assert.ElementsMatch(t,
		[]int{exchanged[0].ID, exchanged[1].ID},
		[]int{rest[0].ID, rest[1].ID})
}

func TestTileConservationAcrossDrawAndReturn(t *testing.T) {
	bag := New(&Config{Seed: 3}, models.DefaultLetterDistribution)
	require.Equal(t, 102, bag.TotalCreated())

	held := bag.Draw(7)
	assert.Equal(t, bag.TotalCreated(), bag.Remaining()+len(held))

	bag.Return(held[:3])
	held = held[3:]
	assert.Equal(t, bag.TotalCreated(), bag.Remaining()+len(held))
}
