package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dustfield/constant"
	"github.com/lixenwraith/dustfield/sim"
)

// Palette selects how a painted particle is colored.
type Palette uint8

const (
	// PalettePosition shades by cell position: red grows to the right,
	// green grows downward, blue stays at a constant level.
	PalettePosition Palette = iota
	// PaletteVelocity shades by speed, sweeping hue from blue at rest
	// toward red at full scale.
	PaletteVelocity
	// PaletteMono shades an amber ramp that brightens downward.
	PaletteMono

	paletteCount
)

// String returns the palette name for logs.
func (pl Palette) String() string {
	switch pl {
	case PalettePosition:
		return "position"
	case PaletteVelocity:
		return "velocity"
	case PaletteMono:
		return "mono"
	default:
		return "unknown"
	}
}

// Next cycles to the following palette, wrapping after the last one.
func (pl Palette) Next() Palette {
	return (pl + 1) % paletteCount
}

// Shade computes the color for a particle painted at cell coordinates
// (x, y) inside a width by subrows grid. Coordinates are the floored
// integer cell position, not the raw float position.
func (pl Palette) Shade(p sim.Particle, x, y, width, subrows int) tcell.Color {
	switch pl {
	case PaletteVelocity:
		return velocityShade(p)
	case PaletteMono:
		return monoShade(y, subrows)
	default:
		return positionShade(x, y, width, subrows)
	}
}

func positionShade(x, y, width, subrows int) tcell.Color {
	red := int32(float64(x) / float64(width) * 255.0 * constant.GradientRedGain)
	green := int32(float64(y) / float64(subrows) * 255.0 * constant.GradientGreenGain)
	blue := int32(255.0 * constant.GradientBlueLevel)
	return tcell.NewRGBColor(red, green, blue)
}

func velocityShade(p sim.Particle) tcell.Color {
	speed := math.Hypot(p.DX, p.DY)
	t := speed / constant.VelocityFullScale
	if t > 1 {
		t = 1
	}
	hue := constant.VelocityHueSpan * (1 - t)
	r, g, b := colorful.Hsv(hue, 0.9, 0.45+0.55*t).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func monoShade(y, subrows int) tcell.Color {
	v := 0.3 + 0.7*float64(y)/float64(subrows)
	r, g, b := colorful.Hsv(45, 0.8, v).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
