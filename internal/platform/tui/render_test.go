package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gravswarm/internal/canvas"
	"github.com/vovakirdan/gravswarm/internal/sim"
	"github.com/vovakirdan/gravswarm/internal/vec"
)

func TestDrawWorldPlacesBodies(t *testing.T) {
	screen := canvas.NewScreen(42, 22)
	world := &sim.World{
		Ships: []sim.Ship{
			{Pos: vec.New(0, 0, 0)},
		},
		Planets: []sim.Planet{
			{Pos: vec.New(0, 0, 0), Mass: 4},
		},
	}

	DrawWorld(screen, world, 100)

	// Planets draw over ships, so the center cell shows the planet glyph.
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Rune == PlanetGlyph {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("planet glyph not drawn")
	}

	// Border corners present
	if screen.GetCell(0, 1).Rune != '┌' {
		t.Errorf("top-left border missing, got %q", screen.GetCell(0, 1).Rune)
	}
	if screen.GetCell(41, 21).Rune != '┘' {
		t.Errorf("bottom-right border missing, got %q", screen.GetCell(41, 21).Rune)
	}
}

func TestDrawWorldHeavyPlanet(t *testing.T) {
	screen := canvas.NewScreen(40, 20)
	world := &sim.World{
		Planets: []sim.Planet{
			{Pos: vec.New(0, 0, 0), Mass: heavyMassThreshold + 1},
		},
	}

	DrawWorld(screen, world, 50)

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Rune == HeavyPlanetGlyph {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("heavy planet glyph not drawn")
	}
}

func TestDrawWorldTinyScreen(t *testing.T) {
	// Must not panic on a degenerate terminal.
	screen := canvas.NewScreen(1, 1)
	world := &sim.World{
		Ships: []sim.Ship{{Pos: vec.New(0, 0, 0)}},
	}
	DrawWorld(screen, world, 100)
}

func TestRenderScreenShape(t *testing.T) {
	screen := canvas.NewScreen(10, 3)
	screen.DrawText(0, 0, "hello", canvas.ColorDefault)

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("first line missing text: %q", lines[0])
	}
}
