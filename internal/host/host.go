// Package host declares what the render loop needs from the platform: a
// drawable surface, an input event queue and a timer.
package host

import (
	"errors"
	"image/color"
)

// ErrInit wraps every failure to bring up a window, renderer or screen.
var ErrInit = errors.New("host initialization failed")

// Fixed draw colors.
var (
	Background = color.RGBA{0, 0, 0, 255}
	Foreground = color.RGBA{255, 255, 255, 255}
)

// Surface is a drawable with a logical resolution. Coordinates outside it
// are ignored by PlotPoint.
type Surface interface {
	Clear(c color.RGBA)
	PlotPoint(x, y int, c color.RGBA)
	Present()
	// Destroy releases the surface and its platform context. Calling it
	// more than once is allowed.
	Destroy()
}

// EventKind is the type of an input event.
type EventKind int

const (
	Quit EventKind = iota + 1
	KeyUp
)

// Key identifies a released key.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyLeft
)

// Event is one pending input event.
type Event struct {
	Kind EventKind
	Key  Key
}

// Stops reports whether ev ends the program.
func (ev Event) Stops() bool {
	return ev.Kind == Quit || (ev.Kind == KeyUp && ev.Key == KeyEscape)
}

// EventSource drains the platform's pending input.
type EventSource interface {
	PollEvents() []Event
}
