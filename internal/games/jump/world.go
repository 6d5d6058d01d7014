package jump

import "github.com/vovakirdan/rikkajump/internal/config"

// Platform is a tile-quantized ledge. X and Y are the top-left corner in
// world pixels; W is always a whole number of tiles.
type Platform struct {
	X, Y float64
	W    int
}

// Coin is a collectible centered on (X, Y).
type Coin struct {
	X, Y      float64
	Big       bool // S coin
	Collected bool
}

// Value returns the score a coin is worth.
func (c Coin) Value(s config.JumpScoring) int {
	if c.Big {
		return s.BigCoin
	}
	return s.SmallCoin
}

// World holds every scrolling entity. Platform order is generation order,
// which is also the collision test order.
type World struct {
	Platforms []Platform
	Coins     []Coin
}

// Clear removes all entities, keeping the backing arrays.
func (w *World) Clear() {
	w.Platforms = w.Platforms[:0]
	w.Coins = w.Coins[:0]
}

// Topmost returns the platform with the smallest Y (first one on ties).
func (w *World) Topmost() (Platform, bool) {
	if len(w.Platforms) == 0 {
		return Platform{}, false
	}
	top := w.Platforms[0]
	for _, p := range w.Platforms[1:] {
		if p.Y < top.Y {
			top = p
		}
	}
	return top, true
}

// Lowest returns the platform with the largest Y (first one on ties).
func (w *World) Lowest() (Platform, bool) {
	if len(w.Platforms) == 0 {
		return Platform{}, false
	}
	low := w.Platforms[0]
	for _, p := range w.Platforms[1:] {
		if p.Y > low.Y {
			low = p
		}
	}
	return low, true
}

// Shift moves every platform and coin down by dy.
func (w *World) Shift(dy float64) {
	for i := range w.Platforms {
		w.Platforms[i].Y += dy
	}
	for i := range w.Coins {
		w.Coins[i].Y += dy
	}
}

// Cull drops platforms at or below limit, and coins that are collected or at
// or below limit.
func (w *World) Cull(limit float64) {
	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Y < limit {
			platforms = append(platforms, p)
		}
	}
	w.Platforms = platforms

	coins := w.Coins[:0]
	for _, c := range w.Coins {
		if c.Y < limit && !c.Collected {
			coins = append(coins, c)
		}
	}
	w.Coins = coins
}

// Collect marks every uncollected coin whose center lies strictly inside the
// circle (cx, cy, radius) and returns the score gained.
func (w *World) Collect(cx, cy, radius float64, s config.JumpScoring) int {
	gained := 0
	r2 := radius * radius
	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected {
			continue
		}
		dx := cx - c.X
		dy := cy - c.Y
		if dx*dx+dy*dy < r2 {
			c.Collected = true
			gained += c.Value(s)
		}
	}
	return gained
}
