package render

import (
	"github.com/lixenwraith/dustfield/sim"
)

// Rasterizer paints a particle field into a frame using its current
// palette.
type Rasterizer struct {
	palette Palette
}

// NewRasterizer creates a rasterizer with the position palette.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{palette: PalettePosition}
}

// Palette returns the active palette.
func (r *Rasterizer) Palette() Palette {
	return r.palette
}

// CyclePalette switches to the next palette and returns it.
func (r *Rasterizer) CyclePalette() Palette {
	r.palette = r.palette.Next()
	return r.palette
}

// Rasterize clears the frame and paints every visible particle into it.
// A particle at float position (x, y) lands in the sub-row (int(x),
// int(y)); particles outside [0, width) x [0, subrows) are skipped.
// When several particles share a sub-row the last one painted wins.
func (r *Rasterizer) Rasterize(frame *Frame, field *sim.Field) {
	frame.Clear()
	width := frame.Width()
	subrows := frame.Subrows()
	fw := float64(width)
	fs := float64(subrows)
	for _, p := range field.Particles {
		if !(p.X >= 0 && p.X < fw && p.Y >= 0 && p.Y < fs) {
			continue
		}
		x := int(p.X)
		y := int(p.Y)
		frame.SetSubrow(x, y, r.palette.Shade(p, x, y, width, subrows))
	}
}
