package jump

import (
	"math"
	"testing"

	"github.com/vovakirdan/rikkajump/internal/config"
	"github.com/vovakirdan/rikkajump/internal/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestPlayer(x, y, vy float64) (*Player, *config.JumpConfig) {
	cfg := config.DefaultJumpConfig()
	p := NewPlayer(&cfg)
	p.X, p.Y, p.VY = x, y, vy
	return &p, &cfg
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestPlayerGravity(t *testing.T) {
	p, _ := newTestPlayer(100, 50, 0)
	p.Update(core.NewInputFrame(), nil)

	if !almostEqual(p.VY, 0.2) {
		t.Errorf("vy after one tick = %v, want 0.2", p.VY)
	}
	if !almostEqual(p.Y, 50.2) {
		t.Errorf("y after one tick = %v, want 50.2", p.Y)
	}
}

func TestPlayerHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		actions  []core.Action
		wantX    float64
		wantLeft bool
	}{
		{"none", 100, nil, 100, false},
		{"left", 100, []core.Action{core.ActionLeft}, 98, true},
		{"right", 100, []core.Action{core.ActionRight}, 102, false},
		{"both cancel", 100, []core.Action{core.ActionLeft, core.ActionRight}, 100, true},
		{"clamp left", 1, []core.Action{core.ActionLeft}, 0, true},
		{"clamp right", 343, []core.Action{core.ActionRight}, 344, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlayer(tt.x, 50, 0)
			p.Update(inputWith(tt.actions...), nil)
			if p.X != tt.wantX {
				t.Errorf("x = %v, want %v", p.X, tt.wantX)
			}
			if p.FacingLeft != tt.wantLeft {
				t.Errorf("FacingLeft = %v, want %v", p.FacingLeft, tt.wantLeft)
			}
		})
	}
}

func TestPlayerStaysInPlayfield(t *testing.T) {
	p, cfg := newTestPlayer(180, 50, 0)
	maxX := float64(cfg.World.Width - cfg.Player.Width)

	for i := 0; i < 400; i++ {
		a := core.ActionLeft
		if (i/100)%2 == 1 {
			a = core.ActionRight
		}
		p.Y, p.VY = 50, 0
		p.Update(inputWith(a), nil)
		if p.X < 0 || p.X > maxX {
			t.Fatalf("tick %d: x=%v outside [0, %v]", i, p.X, maxX)
		}
	}
}

func TestPlayerLanding(t *testing.T) {
	platform := Platform{X: 100, Y: 100, W: 32}

	tests := []struct {
		name       string
		x, y, vy   float64
		wantBounce bool
	}{
		{"falling onto top", 100, 83, 1, true},
		{"falling inside lower band", 110, 96, 0, true},
		{"ascending through", 100, 89, -2, false},
		{"no horizontal overlap", 140, 83, 1, false},
		{"touching left edge only", 84, 83, 1, false},
		{"below band", 100, 98, 0, false},
		{"above platform", 100, 70, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlayer(tt.x, tt.y, tt.vy)
			bounced := p.Update(core.NewInputFrame(), []Platform{platform})

			if bounced != tt.wantBounce {
				t.Fatalf("bounced = %v, want %v", bounced, tt.wantBounce)
			}
			if bounced {
				if p.Y != 84 {
					t.Errorf("y after bounce = %v, want 84", p.Y)
				}
				if p.VY != -4 {
					t.Errorf("vy after bounce = %v, want -4", p.VY)
				}
			}
		})
	}
}

func TestPlayerLandsOnFirstPlatformInOrder(t *testing.T) {
	platforms := []Platform{
		{X: 100, Y: 104, W: 32},
		{X: 100, Y: 100, W: 32},
	}
	p, _ := newTestPlayer(100, 89, 0)

	if !p.Update(core.NewInputFrame(), platforms) {
		t.Fatal("expected a bounce")
	}
	if p.Y != 88 {
		t.Errorf("should snap to the first platform in list order, y=%v", p.Y)
	}
}

func TestPlayerDeath(t *testing.T) {
	p, _ := newTestPlayer(100, 240, -0.2)

	p.Update(core.NewInputFrame(), nil)
	if !p.Alive {
		t.Fatalf("player at y=%v should still be alive", p.Y)
	}

	p.Update(core.NewInputFrame(), nil)
	if p.Alive {
		t.Fatalf("player at y=%v should be dead", p.Y)
	}

	// A dead player no longer moves.
	y := p.Y
	p.Update(inputWith(core.ActionLeft), nil)
	if p.Y != y || p.X != 100 {
		t.Error("dead player should not update")
	}
}

func TestPlayerPlaceOn(t *testing.T) {
	p, _ := newTestPlayer(0, 0, 3)
	p.PlaceOn(Platform{X: 160, Y: 220, W: 40})

	if p.X != 172 || p.Y != 204 || p.VY != 0 {
		t.Errorf("PlaceOn: got (%v, %v, vy=%v), want (172, 204, vy=0)", p.X, p.Y, p.VY)
	}

	cx, cy := p.Center()
	if cx != 180 || cy != 212 {
		t.Errorf("Center = (%v, %v), want (180, 212)", cx, cy)
	}
}
