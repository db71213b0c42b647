package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravswarm/internal/canvas"
	"github.com/vovakirdan/gravswarm/internal/sim"
)

// Glyphs for simulation elements.
const (
	ShipGlyph        = '·'
	ShipClusterGlyph = '•' // Two or more ships in one cell
	PlanetGlyph      = '●'
	HeavyPlanetGlyph = '◉' // Mass above the heavy threshold
)

// heavyMassThreshold separates the two planet glyphs.
const heavyMassThreshold = 25.0

// colorStyles maps canvas.Color to lipgloss styles.
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault:      lipgloss.NewStyle(),
	canvas.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	canvas.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	canvas.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	canvas.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	canvas.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	canvas.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	canvas.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	canvas.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	canvas.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	canvas.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	canvas.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	canvas.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// DrawWorld renders the world onto the screen buffer: a domain border,
// planets, and the ship swarm. The screen is cleared first.
func DrawWorld(dst *canvas.Screen, w *sim.World, area float64) {
	dst.Clear()

	// Reserve the top row for the HUD; the border frames the rest.
	top := 1
	gridH := dst.Height() - top
	if gridH < 2 || dst.Width() < 2 {
		return
	}

	dst.DrawBox(0, top, dst.Width(), gridH, canvas.ColorGray)

	// Project into the interior of the border.
	view := canvas.Viewport{
		Area: area,
		W:    dst.Width() - 2,
		H:    gridH - 2,
	}
	plot := func(x, y int, r rune, c canvas.Color) {
		dst.SetColored(x+1, y+top+1, r, c)
	}

	for i := range w.Ships {
		x, y, ok := view.ToCell(w.Ships[i].Pos)
		if !ok {
			continue
		}
		if cell := dst.GetCell(x+1, y+top+1); cell.Rune == ShipGlyph || cell.Rune == ShipClusterGlyph {
			plot(x, y, ShipClusterGlyph, canvas.ColorBrightCyan)
		} else {
			plot(x, y, ShipGlyph, canvas.ColorCyan)
		}
	}

	// Planets draw last so a dense swarm never hides an attractor.
	for i := range w.Planets {
		x, y, ok := view.ToCell(w.Planets[i].Pos)
		if !ok {
			continue
		}
		glyph := PlanetGlyph
		if w.Planets[i].Mass >= heavyMassThreshold {
			glyph = HeavyPlanetGlyph
		}
		plot(x, y, glyph, canvas.ColorOrange)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *canvas.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
