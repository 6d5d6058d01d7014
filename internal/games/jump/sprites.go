package jump

import (
	_ "embed"
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rikkajump/internal/core"
)

//go:embed assets/sprites.yaml
var spriteSheetYAML []byte

// Sprite is a small block of colored glyphs.
type Sprite struct {
	Cells [][]rune
	Color core.Color
	W, H  int
}

// SpriteSheet holds every sprite the game draws.
type SpriteSheet struct {
	Character     Sprite
	CharacterLeft Sprite
	CoinSmall     Sprite
	CoinBig       Sprite
	PlatformTile  Sprite
}

type spriteDef struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

type sheetDef struct {
	Character    spriteDef `yaml:"character"`
	CoinSmall    spriteDef `yaml:"coin_small"`
	CoinBig      spriteDef `yaml:"coin_big"`
	PlatformTile spriteDef `yaml:"platform_tile"`
}

// mirrorRunes maps glyphs to their horizontal mirror image.
var mirrorRunes = map[rune]rune{
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'/': '\\', '\\': '/',
	'◀': '▶', '▶': '◀',
	'▌': '▐', '▐': '▌',
	'▖': '▗', '▗': '▖',
	'▘': '▝', '▝': '▘',
}

// LoadSpriteSheet parses a YAML sprite sheet.
func LoadSpriteSheet(data []byte) (*SpriteSheet, error) {
	var def sheetDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("sprites: cannot parse sheet: %w", err)
	}

	var errs []error
	build := func(name string, d spriteDef) Sprite {
		s, err := buildSprite(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("sprites: %s: %w", name, err))
		}
		return s
	}

	sheet := &SpriteSheet{
		Character:    build("character", def.Character),
		CoinSmall:    build("coin_small", def.CoinSmall),
		CoinBig:      build("coin_big", def.CoinBig),
		PlatformTile: build("platform_tile", def.PlatformTile),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	sheet.CharacterLeft = sheet.Character.Mirrored()
	return sheet, nil
}

func buildSprite(d spriteDef) (Sprite, error) {
	if len(d.Rows) == 0 {
		return Sprite{}, errors.New("no rows")
	}
	color, ok := core.ColorByName(d.Color)
	if !ok {
		return Sprite{}, fmt.Errorf("unknown color %q", d.Color)
	}

	w := utf8.RuneCountInString(d.Rows[0])
	if w == 0 {
		return Sprite{}, errors.New("empty row")
	}
	cells := make([][]rune, len(d.Rows))
	for i, row := range d.Rows {
		cells[i] = []rune(row)
		if len(cells[i]) != w {
			return Sprite{}, fmt.Errorf("row %d has %d runes, expected %d", i, len(cells[i]), w)
		}
	}

	return Sprite{Cells: cells, Color: color, W: w, H: len(cells)}, nil
}

// Mirrored returns the sprite flipped horizontally.
func (s Sprite) Mirrored() Sprite {
	cells := make([][]rune, len(s.Cells))
	for y, row := range s.Cells {
		out := make([]rune, len(row))
		for x, r := range row {
			if m, ok := mirrorRunes[r]; ok {
				r = m
			}
			out[len(row)-1-x] = r
		}
		cells[y] = out
	}
	return Sprite{Cells: cells, Color: s.Color, W: s.W, H: s.H}
}

// Draw blits the sprite with its top-left corner at cell (x, y). Spaces are
// transparent.
func (s Sprite) Draw(dst *core.Screen, x, y int) {
	if !dst.Bounds().Intersects(core.NewRect(x, y, s.W, s.H)) {
		return
	}
	for dy, row := range s.Cells {
		for dx, r := range row {
			if r == ' ' {
				continue
			}
			dst.SetColored(x+dx, y+dy, r, s.Color)
		}
	}
}

// defaultSprites is loaded once at startup and panics on a malformed sheet.
var defaultSprites = mustLoadSpriteSheet(spriteSheetYAML)

func mustLoadSpriteSheet(data []byte) *SpriteSheet {
	sheet, err := LoadSpriteSheet(data)
	if err != nil {
		panic(err)
	}
	return sheet
}
