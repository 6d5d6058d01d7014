package jump

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rikkajump/internal/config"
)

// CoinKind is the outcome of a coin spawn roll.
type CoinKind int

const (
	CoinNone CoinKind = iota
	CoinSmall
	CoinBig
)

// Generator places platforms and coins by random-walking upward from the
// current topmost platform.
type Generator struct {
	rng      *rand.Rand
	cfg      *config.JumpConfig
	maxTiles int // Widest platform in tiles; lowered by difficulty
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg *config.JumpConfig) *Generator {
	return &Generator{
		rng:      rng,
		cfg:      cfg,
		maxTiles: cfg.Platforms.MaxTiles,
	}
}

// SetMaxTiles limits platform width. Values are clamped to the configured
// [min_tiles, max_tiles] range.
func (g *Generator) SetMaxTiles(n int) {
	p := g.cfg.Platforms
	if n > p.MaxTiles {
		n = p.MaxTiles
	}
	if n < p.MinTiles {
		n = p.MinTiles
	}
	g.maxTiles = n
}

// intRange returns a uniform integer in [lo, hi].
func (g *Generator) intRange(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// PlatformWidth returns a random tile-quantized width in pixels.
func (g *Generator) PlatformWidth() int {
	tiles := g.intRange(g.cfg.Platforms.MinTiles, g.maxTiles)
	return tiles * g.cfg.Platforms.TileWidth
}

// RollCoin decides whether a new platform carries a coin.
func (g *Generator) RollCoin() CoinKind {
	r := g.rng.Float64()
	switch {
	case r < g.cfg.Coins.SmallChance:
		return CoinSmall
	case r < g.cfg.Coins.BigChance:
		return CoinBig
	default:
		return CoinNone
	}
}

// clampX keeps a platform of width w inside the wall margins.
func (g *Generator) clampX(x float64, w int) float64 {
	margin := float64(g.cfg.World.WallMargin)
	right := float64(g.cfg.World.Width - w - g.cfg.World.WallMargin)
	return math.Max(margin, math.Min(right, x))
}

// Populate replaces the world with a fresh layout: a screen-centered first
// platform near the bottom and enough platforms above it to fill one screen
// beyond the visible top.
func (g *Generator) Populate(w *World) {
	w.Clear()

	width := g.PlatformWidth()
	startX := float64(g.cfg.World.Width/2 - width/2)
	startY := float64(g.cfg.World.Height - g.cfg.Platforms.StartLift)
	w.Platforms = append(w.Platforms, Platform{X: startX, Y: startY, W: width})

	g.walk(w, startX, startY, -float64(g.cfg.World.Height))
}

// Extend appends platforms above the topmost one until the walk passes
// max_dy above the visible top. Does nothing on an empty world.
func (g *Generator) Extend(w *World) {
	top, ok := w.Topmost()
	if !ok {
		return
	}
	g.walk(w, top.X, top.Y, -float64(g.cfg.Platforms.MaxDY))
}

func (g *Generator) walk(w *World, prevX, y, stopY float64) {
	p := g.cfg.Platforms
	for y > stopY {
		y -= float64(g.intRange(p.MinDY, p.MaxDY))

		width := g.PlatformWidth()
		dx := g.intRange(-p.MaxDX, p.MaxDX)
		x := g.clampX(prevX+float64(dx), width)

		w.Platforms = append(w.Platforms, Platform{X: x, Y: y, W: width})

		if kind := g.RollCoin(); kind != CoinNone {
			w.Coins = append(w.Coins, Coin{
				X:   x + float64(width/2),
				Y:   y - float64(g.cfg.Coins.OffsetY),
				Big: kind == CoinBig,
			})
		}

		prevX = x
	}
}
