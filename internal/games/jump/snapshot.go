package jump

// GameStateType represents the current game state.
type GameStateType string

const (
	StateTitle    GameStateType = "title"
	StatePlay     GameStateType = "play"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame       uint64
	RunTicks    int
	State       GameStateType
	Score       int
	Height      int
	WorldOffset float64
	PlayerX     float64
	PlayerY     float64
	PlayerVY    float64
	Alive       bool
	Platforms   int
	Coins       int
	TopY        float64 // Y of the topmost platform
	MaxTiles    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	topY := 0.0
	if top, ok := g.world.Topmost(); ok {
		topY = top.Y
	}

	return Snapshot{
		Frame:       g.frame,
		RunTicks:    g.runTicks,
		State:       g.state,
		Score:       g.score,
		Height:      int(g.heightScore),
		WorldOffset: g.worldOffset,
		PlayerX:     g.player.X,
		PlayerY:     g.player.Y,
		PlayerVY:    g.player.VY,
		Alive:       g.player.Alive,
		Platforms:   len(g.world.Platforms),
		Coins:       len(g.world.Coins),
		TopY:        topY,
		MaxTiles:    g.gen.maxTiles,
	}
}
