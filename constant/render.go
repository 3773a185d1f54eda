package constant

// UpperHalfBlock is the glyph every cell is painted with. Its foreground
// covers the top half of the cell and its background shows through the
// bottom half, giving two independently colorable sub-rows per cell.
const UpperHalfBlock = '▀'

// Position Gradient
const (
	// GradientRedGain scales the horizontal position channel
	GradientRedGain = 0.8

	// GradientGreenGain scales the vertical position channel
	GradientGreenGain = 0.8

	// GradientBlueLevel is the constant blue channel level
	GradientBlueLevel = 0.6
)

// Velocity Palette
const (
	// VelocityHueSpan is the hue range in degrees swept from slow to fast
	VelocityHueSpan = 240.0

	// VelocityFullScale is the speed, in sub-rows/second, mapped to the
	// hot end of the hue sweep
	VelocityFullScale = 40.0
)
