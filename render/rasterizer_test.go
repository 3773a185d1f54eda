package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dustfield/sim"
)

func TestRasterizeFloorMapping(t *testing.T) {
	// A 10x3 frame exposes sub-rows 0..5. A particle at (5.7, 5.053)
	// floors to sub-row (5, 5), the lower half of cell (5, 2).
	f := NewFrame(10, 3)
	r := NewRasterizer()
	field := &sim.Field{
		Particles: []sim.Particle{{X: 5.7, Y: 5.053}},
		Width:     10,
		Subrows:   6,
	}

	r.Rasterize(f, field)

	cell, _ := f.Cell(5, 2)
	want := tcell.NewRGBColor(102, 170, 153)
	if cell.Bg != want {
		t.Errorf("Expected background %v at (5,2), got %v", want, cell.Bg)
	}
	if cell.Fg != tcell.ColorBlack {
		t.Errorf("Expected foreground untouched, got %v", cell.Fg)
	}
}

func TestRasterizeEvenSubrowForeground(t *testing.T) {
	f := NewFrame(10, 3)
	r := NewRasterizer()
	field := &sim.Field{
		Particles: []sim.Particle{{X: 5.7, Y: 4.2}},
		Width:     10,
		Subrows:   6,
	}

	r.Rasterize(f, field)

	cell, _ := f.Cell(5, 2)
	want := tcell.NewRGBColor(102, 136, 153)
	if cell.Fg != want {
		t.Errorf("Expected foreground %v at (5,2), got %v", want, cell.Fg)
	}
	if cell.Bg != tcell.ColorBlack {
		t.Errorf("Expected background untouched, got %v", cell.Bg)
	}
}

func TestRasterizeSkipsOutOfRange(t *testing.T) {
	f := NewFrame(10, 3)
	r := NewRasterizer()
	field := &sim.Field{
		Particles: []sim.Particle{
			{X: -0.001, Y: 2},
			{X: 10, Y: 2},
			{X: 3, Y: -0.5},
			{X: 3, Y: 6},
			{X: math.NaN(), Y: math.NaN()},
		},
		Width:   10,
		Subrows: 6,
	}

	r.Rasterize(f, field)

	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			cell, _ := f.Cell(x, y)
			if cell != blackCell {
				t.Errorf("Expected off-screen particles skipped, cell (%d,%d) is %+v", x, y, cell)
			}
		}
	}
}

func TestRasterizeLastWriteWins(t *testing.T) {
	f := NewFrame(10, 3)
	r := NewRasterizer()
	r.CyclePalette() // velocity palette separates the two particles
	slow := sim.Particle{X: 2.5, Y: 1.5}
	fast := sim.Particle{X: 2.1, Y: 1.9, DX: 50}
	field := &sim.Field{
		Particles: []sim.Particle{slow, fast},
		Width:     10,
		Subrows:   6,
	}

	r.Rasterize(f, field)

	cell, _ := f.Cell(2, 0)
	want := PaletteVelocity.Shade(fast, 2, 1, 10, 6)
	if cell.Bg != want {
		t.Errorf("Expected later particle to win sub-row, got %v want %v", cell.Bg, want)
	}
}

func TestRasterizeClearsPreviousFrame(t *testing.T) {
	f := NewFrame(10, 3)
	r := NewRasterizer()
	first := &sim.Field{
		Particles: []sim.Particle{{X: 1, Y: 0}},
		Width:     10,
		Subrows:   6,
	}
	second := &sim.Field{
		Particles: []sim.Particle{{X: 7, Y: 3}},
		Width:     10,
		Subrows:   6,
	}

	r.Rasterize(f, first)
	r.Rasterize(f, second)

	cell, _ := f.Cell(1, 0)
	if cell != blackCell {
		t.Errorf("Expected stale particle cleared, got %+v", cell)
	}
	cell, _ = f.Cell(7, 1)
	if cell.Bg == tcell.ColorBlack {
		t.Error("Expected fresh particle painted")
	}
}
