// Package render converts a particle field into colored half-block cells
// and flushes them to a tcell screen. Each character cell carries two
// vertically stacked sub-rows: the foreground color tints the upper half
// of the '▀' glyph and the background color fills the lower half, which
// doubles the vertical resolution of the terminal.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dustfield/constant"
)

// Cell holds the two color slots of one character cell. Fg paints the
// upper sub-row, Bg the lower one.
type Cell struct {
	Fg tcell.Color
	Bg tcell.Color
}

var blackCell = Cell{Fg: tcell.ColorBlack, Bg: tcell.ColorBlack}

// Frame is a row-major buffer of character cells covering the visible
// area. Height is measured in character cells, so a frame exposes
// 2*Height() sub-rows to the rasterizer.
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a cleared frame of the given character dimensions.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	f.Clear()
	return f
}

// Width returns the frame width in character cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in character cells.
func (f *Frame) Height() int {
	return f.height
}

// Subrows returns the number of paintable sub-rows, twice the cell height.
func (f *Frame) Subrows() int {
	return f.height * 2
}

// Resize adjusts the frame to new dimensions and clears it. The backing
// slice is reused when it is large enough.
func (f *Frame) Resize(width, height int) {
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]Cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear resets every cell to black on black. The glyph itself never
// changes, so clearing only touches the color slots.
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = blackCell
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Cell returns the cell at character coordinates (x, y) and whether the
// coordinates are inside the frame.
func (f *Frame) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{}, false
	}
	return f.cells[y*f.width+x], true
}

// SetSubrow colors one sub-row of the frame. Even sub-rows land in the
// foreground slot of their cell, odd ones in the background slot. Calls
// outside the frame are ignored.
func (f *Frame) SetSubrow(x, y int, color tcell.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height*2 {
		return
	}
	cell := &f.cells[(y/2)*f.width+x]
	if y%2 == 0 {
		cell.Fg = color
	} else {
		cell.Bg = color
	}
}

// Flush writes every cell to the screen as an upper half block styled
// with the cell's color pair, then shows the result.
func (f *Frame) Flush(screen tcell.Screen) {
	for y := 0; y < f.height; y++ {
		row := f.cells[y*f.width : (y+1)*f.width]
		for x, cell := range row {
			style := tcell.StyleDefault.Foreground(cell.Fg).Background(cell.Bg)
			screen.SetContent(x, y, constant.UpperHalfBlock, nil, style)
		}
	}
	screen.Show()
}
