package jump

import (
	"github.com/vovakirdan/rikkajump/internal/config"
	"github.com/vovakirdan/rikkajump/internal/core"
)

// Player is the auto-bouncing character. X, Y is the top-left corner of the
// hitbox in world pixels; positive VY is downward.
type Player struct {
	X, Y       float64
	VY         float64
	Alive      bool
	FacingLeft bool

	cfg *config.JumpConfig
}

// NewPlayer creates a player using the given tuning.
func NewPlayer(cfg *config.JumpConfig) Player {
	p := Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset restores the spawn defaults. The game moves the player onto the
// lowest platform afterwards.
func (p *Player) Reset() {
	p.X = float64(p.cfg.World.Width / 2)
	p.Y = float64(p.cfg.World.Height - 40)
	p.VY = 0
	p.Alive = true
	p.FacingLeft = false
}

// PlaceOn stands the player centered on top of a platform, at rest.
func (p *Player) PlaceOn(pl Platform) {
	p.X = pl.X + float64(pl.W/2) - float64(p.cfg.Player.Width/2)
	p.Y = pl.Y - float64(p.cfg.Player.Height)
	p.VY = 0
}

// Center returns the center of the hitbox.
func (p *Player) Center() (float64, float64) {
	return p.X + float64(p.cfg.Player.Width)/2, p.Y + float64(p.cfg.Player.Height)/2
}

// Update advances the player one tick: horizontal input, gravity, landing
// and the fall-out check. Returns true if the player bounced this tick.
func (p *Player) Update(in core.InputFrame, platforms []Platform) bool {
	if !p.Alive {
		return false
	}

	phys := p.cfg.Physics
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)

	if left {
		p.X -= phys.PlayerSpeed
	}
	if right {
		p.X += phys.PlayerSpeed
	}
	p.FacingLeft = left
	p.X = core.Clamp(p.X, 0, float64(p.cfg.World.Width-p.cfg.Player.Width))

	p.VY += phys.Gravity
	p.Y += p.VY

	bounced := false
	if p.VY >= 0 {
		for _, pl := range platforms {
			if p.landsOn(pl) {
				p.Y = pl.Y - float64(p.cfg.Player.Height)
				p.VY = phys.JumpVelocity
				bounced = true
				break
			}
		}
	}

	if p.Y > float64(p.cfg.World.Height) {
		p.Alive = false
	}

	return bounced
}

// landsOn is the asymmetric landing test: horizontal overlap, and feet inside
// a band from the platform top down to a little below its bottom so a fast
// fall cannot tunnel through within one tick.
func (p *Player) landsOn(pl Platform) bool {
	w := float64(p.cfg.Player.Width)
	feet := p.Y + float64(p.cfg.Player.Height)
	band := float64(p.cfg.Platforms.TileHeight) + p.cfg.Physics.LandingTolerance

	return p.X+w > pl.X &&
		p.X < pl.X+float64(pl.W) &&
		feet > pl.Y &&
		feet < pl.Y+band
}
