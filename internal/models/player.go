package models

// Player represents one participant of a game session. All fields the turn
// machine needs are present from game start; none are added later.
type Player struct {
	// ID is the player's user ID
	ID string `json:"id"`

	// Name is the player's display name
	Name string `json:"name"`

	// Rack is the player's private hand of tiles, owned by the session
	Rack []Tile `json:"rack"`

	// Score is the player's running total
	Score int `json:"score"`

	// InactiveTurns counts consecutive turns the player let time out
	InactiveTurns int `json:"inactiveTurns"`

	// Skipped is set once InactiveTurns reaches the configured threshold.
	// A skipped player is bypassed in rotation until the host marks them
	// active again.
	Skipped bool `json:"skipped"`
}

// RackTile returns the rack tile with the given id, or nil
func (p *Player) RackTile(tileID int) *Tile {
	for i := range p.Rack {
		if p.Rack[i].ID == tileID {
			return &p.Rack[i]
		}
	}
	return nil
}

// RackValue sums the face values of the player's remaining tiles
func (p *Player) RackValue() int {
	total := 0
	for _, t := range p.Rack {
		total += t.Points
	}
	return total
}
