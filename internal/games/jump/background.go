package jump

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rikkajump/internal/config"
	"github.com/vovakirdan/rikkajump/internal/core"
)

// Texture is a square, tiling wood-grain color grid used for the walls.
type Texture struct {
	size  int
	cells []core.Color
}

// NewTexture generates the wall texture: an orange base, speckles of beige
// and brown, and a few dark vertical grooves.
func NewTexture(rng *rand.Rand, bg config.JumpBackground) *Texture {
	t := &Texture{
		size:  bg.TextureSize,
		cells: make([]core.Color, bg.TextureSize*bg.TextureSize),
	}

	for i := range t.cells {
		t.cells[i] = core.ColorOrange
	}

	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			if rng.Float64() < bg.SpeckleChance {
				c := core.ColorBrown
				if rng.Float64() < bg.BeigeChance {
					c = core.ColorBeige
				}
				t.set(x, y, c)
			}
		}
	}

	for i := 0; i < bg.Grooves; i++ {
		x := rng.Intn(t.size)
		for y := 0; y < t.size; y++ {
			if rng.Float64() < bg.GrooveFill {
				t.set(x, y, core.ColorBrown)
			}
		}
	}

	return t
}

func (t *Texture) set(x, y int, c core.Color) {
	t.cells[y*t.size+x] = c
}

// Size returns the texture edge length in pixels.
func (t *Texture) Size() int {
	return t.size
}

// At returns the color at (x, y), wrapping in both directions.
func (t *Texture) At(x, y int) core.Color {
	x = wrap(x, t.size)
	y = wrap(y, t.size)
	return t.cells[y*t.size+x]
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// ScrollOffset returns the vertical texture scroll for a world offset.
func ScrollOffset(worldOffset, parallax float64, size int) float64 {
	return math.Mod(worldOffset*parallax, float64(size))
}
