package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/rikkajump/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// palette holds the lipgloss style for each core.Color, indexed by value.
// Missing entries render unstyled.
var palette = [...]lipgloss.Style{
	// Walls and platforms.
	core.ColorOrange: fg("208"),
	core.ColorBrown:  fg("94"),
	core.ColorBeige:  fg("223"),

	// Character and coins.
	core.ColorPink:         fg("218").Bold(true),
	core.ColorYellow:       fg("3"),
	core.ColorBrightYellow: fg("11"),

	// HUD, panels and the title's color cycle.
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("2"),
	core.ColorBlue:          fg("4"),
	core.ColorMagenta:       fg("5"),
	core.ColorCyan:          fg("6"),
	core.ColorWhite:         fg("7"),
	core.ColorGray:          fg("245"),
	core.ColorBrightRed:     fg("9"),
	core.ColorBrightGreen:   fg("10"),
	core.ColorBrightBlue:    fg("12"),
	core.ColorBrightMagenta: fg("13"),
	core.ColorBrightCyan:    fg("14"),
	core.ColorBrightWhite:   fg("15"),
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts the canvas into terminal output, one styled span per
// run of same-colored cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		span = span[:0]
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(string(span)))
				span, color = span[:0], cell.Color
			}
			span = append(span, cell.Rune)
		}
		if len(span) > 0 {
			sb.WriteString(styleFor(color).Render(string(span)))
		}
	}
	return sb.String()
}
