// Package input translates tcell events into engine commands.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Kind identifies a command produced by the router.
type Kind uint8

const (
	// KindNone marks an event with no mapped command.
	KindNone Kind = iota
	// KindQuit requests loop shutdown.
	KindQuit
	// KindReset regenerates the particle field.
	KindReset
	// KindAttractorSet places the attractor at a sub-row position.
	KindAttractorSet
	// KindAttractorClear removes the attractor.
	KindAttractorClear
	// KindPaletteNext cycles the render palette.
	KindPaletteNext
	// KindPauseToggle suspends or resumes integration.
	KindPauseToggle
	// KindResize reports new screen dimensions in character cells.
	KindResize
)

// Command is one routed input action. X and Y carry the attractor
// target in sub-row coordinates for KindAttractorSet; Width and Height
// carry the new cell dimensions for KindResize.
type Command struct {
	Kind   Kind
	X, Y   float64
	Width  int
	Height int
}

// wheel bits count as scrolling, not as held buttons
const buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3 |
	tcell.Button4 | tcell.Button5 | tcell.Button6 |
	tcell.Button7 | tcell.Button8

// Router converts raw terminal events into commands. It tracks the
// pointer button mask across events so that press, drag and release can
// be told apart.
type Router struct {
	held bool
}

// NewRouter creates a router with no button held.
func NewRouter() *Router {
	return &Router{}
}

// Translate maps one event to a command. Unmapped events yield a
// KindNone command.
func (r *Router) Translate(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.translateKey(ev)
	case *tcell.EventMouse:
		return r.translateMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Command{Kind: KindResize, Width: w, Height: h}
	}
	return Command{}
}

func (r *Router) translateKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return Command{Kind: KindQuit}
		case 'c':
			return Command{Kind: KindPaletteNext}
		case ' ':
			return Command{Kind: KindPauseToggle}
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Command{Kind: KindReset}
	}
	return Command{}
}

func (r *Router) translateMouse(ev *tcell.EventMouse) Command {
	held := ev.Buttons()&buttonBits != tcell.ButtonNone
	was := r.held
	r.held = held

	switch {
	case held:
		// press or drag, both aim the attractor
		col, row := ev.Position()
		return Command{
			Kind: KindAttractorSet,
			X:    float64(col),
			Y:    float64(row * 2),
		}
	case was:
		return Command{Kind: KindAttractorClear}
	}
	return Command{}
}
