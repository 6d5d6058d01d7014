package jump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rikkajump/internal/core"
)

// Smallest terminal the playfield can be drawn on.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Wall glyphs per texture color.
var textureGlyphs = map[core.Color]rune{
	core.ColorOrange: '▒',
	core.ColorBeige:  '░',
	core.ColorBrown:  '▓',
}

// projection maps world pixels onto screen cells.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen, worldW, worldH int) projection {
	return projection{
		sx: float64(dst.Width()) / float64(worldW),
		sy: float64(dst.Height()) / float64(worldH),
	}
}

func (p projection) x(wx float64) int { return int(math.Floor(wx * p.sx)) }
func (p projection) y(wy float64) int { return int(math.Floor(wy * p.sy)) }

// Render draws the current state onto the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		g.renderTooSmall(dst)
		return
	}

	proj := newProjection(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.renderWalls(dst, proj)

	// The title sits on the bare walls; game over keeps the last frame
	// of play under its panel.
	switch g.state {
	case StateTitle:
		g.renderTitle(dst)
	case StatePlay:
		g.renderPlay(dst, proj)
	case StateGameOver:
		g.renderPlay(dst, proj)
		g.renderGameOver(dst)
	}
}

func (g *Game) renderPlay(dst *core.Screen, proj projection) {
	g.renderPlatforms(dst, proj)
	g.renderCoins(dst, proj)
	g.renderPlayer(dst, proj)
	g.renderHUD(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
}

// renderWalls samples the wood texture for every wall cell. The right wall
// uses the mirrored texture.
func (g *Game) renderWalls(dst *core.Screen, proj projection) {
	bg := g.cfg.Background
	worldW := float64(g.cfg.World.Width)
	wallW := float64(bg.WallWidth)
	scroll := int(ScrollOffset(g.worldOffset, bg.Parallax, g.texture.Size()))

	left := proj.x(wallW)
	right := proj.x(worldW - wallW)

	for cy := 0; cy < dst.Height(); cy++ {
		ty := int((float64(cy)+0.5)/proj.sy) - scroll
		for cx := 0; cx < dst.Width(); cx++ {
			if cx >= left && cx < right {
				continue
			}
			wx := (float64(cx) + 0.5) / proj.sx
			tx := int(wx)
			if cx >= right {
				tx = int(worldW - wx)
			}
			c := g.texture.At(tx, ty)
			dst.SetColored(cx, cy, textureGlyphs[c], c)
		}
	}

	dst.DrawVLine(left-1, 0, dst.Height(), '│', core.ColorBrown)
	dst.DrawVLine(right, 0, dst.Height(), '│', core.ColorBrown)
}

func (g *Game) renderPlatforms(dst *core.Screen, proj projection) {
	tile := g.sprites.PlatformTile
	for _, p := range g.world.Platforms {
		y := proj.y(p.Y)
		x0 := proj.x(p.X)
		x1 := max(proj.x(p.X+float64(p.W)), x0+1)
		for x := x0; x < x1; x += tile.W {
			tile.Draw(dst, x, y)
		}
	}
}

func (g *Game) renderCoins(dst *core.Screen, proj projection) {
	for _, c := range g.world.Coins {
		if c.Collected {
			continue
		}
		s := g.sprites.CoinSmall
		if c.Big {
			s = g.sprites.CoinBig
		}
		s.Draw(dst, proj.x(c.X)-s.W/2, proj.y(c.Y)-s.H/2)
	}
}

// renderPlayer anchors the sprite's bottom row on the cell holding the
// player's feet, centered on the hitbox.
func (g *Game) renderPlayer(dst *core.Screen, proj projection) {
	s := g.sprites.Character
	if g.player.FacingLeft {
		s = g.sprites.CharacterLeft
	}

	cx, _ := g.player.Center()
	feet := g.player.Y + float64(g.cfg.Player.Height)
	bottom := proj.y(feet) - 1
	s.Draw(dst, proj.x(cx)-s.W/2, bottom-s.H+1)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	dst.DrawTextColored(1, 0, fmt.Sprintf(" SCORE: %d ", st.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf(" HEIGHT: %d ", st.Height), core.ColorBrightWhite)

	if g.cfg.Difficulty.Enabled {
		level := g.difficulty.Level(st.Height, g.runTicks)
		dst.DrawTextColored(1, 2, fmt.Sprintf(" LEVEL: %d%% ", int(level*100)), core.ColorGray)
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	h := dst.Height()
	color := core.CyclePalette[g.frame%uint64(len(core.CyclePalette))]

	dst.DrawTextCentered(h/3, " R I K K A   J U M P ", color)
	dst.DrawTextCentered(h/2, " PRESS SPACE / ENTER ", core.ColorBrightWhite)
	dst.DrawTextCentered(h/2+2, " ← → : MOVE   Q : QUIT ", core.ColorWhite)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	st := g.State()
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("SCORE: %d", st.Score),
		fmt.Sprintf("HEIGHT: %d", st.Height),
		"",
		"SPACE / ENTER: RETRY",
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
