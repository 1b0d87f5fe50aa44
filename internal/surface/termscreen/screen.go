//go:build tcell

// Package termscreen is a terminal host. The logical surface is scaled down
// onto the character grid; each lit cell shows one or more points.
package termscreen

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"pointcube/internal/frameclock"
	"pointcube/internal/host"
)

const pointRune = '*'

// Screen implements host.Surface, host.EventSource and frameclock.Source.
type Screen struct {
	*frameclock.SystemSource

	s             tcell.Screen
	width, height int
	cols, rows    int
	bg            tcell.Color
	finished      bool
}

// New takes over the terminal for a width x height logical surface.
func New(width, height int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: could not create screen: %v", host.ErrInit, err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: could not initialize screen: %v", host.ErrInit, err)
	}
	s.HideCursor()

	sc := &Screen{
		SystemSource: frameclock.NewSystemSource(),
		s:            s,
		width:        width,
		height:       height,
	}
	sc.cols, sc.rows = s.Size()
	return sc, nil
}

// PollEvents drains pending terminal events. Terminals report presses only,
// so a pressed key is reported as released.
func (sc *Screen) PollEvents() []host.Event {
	var evs []host.Event
	for sc.s.HasPendingEvent() {
		switch ev := sc.s.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlC:
				evs = append(evs, host.Event{Kind: host.Quit})
			case tcell.KeyEscape:
				evs = append(evs, host.Event{Kind: host.KeyUp, Key: host.KeyEscape})
			case tcell.KeyLeft:
				evs = append(evs, host.Event{Kind: host.KeyUp, Key: host.KeyLeft})
			default:
				evs = append(evs, host.Event{Kind: host.KeyUp, Key: host.KeyOther})
			}
		case *tcell.EventResize:
			sc.cols, sc.rows = ev.Size()
			sc.s.Sync()
		case nil:
			// screen finalized
			evs = append(evs, host.Event{Kind: host.Quit})
			return evs
		}
	}
	return evs
}

func (sc *Screen) Clear(c color.RGBA) {
	sc.bg = rgb(c)
	sc.s.SetStyle(tcell.StyleDefault.Background(sc.bg))
	sc.s.Clear()
}

// PlotPoint lights the cell covering logical pixel x, y.
func (sc *Screen) PlotPoint(x, y int, c color.RGBA) {
	if x < 0 || x >= sc.width || y < 0 || y >= sc.height {
		return
	}
	cx := x * sc.cols / sc.width
	cy := y * sc.rows / sc.height
	sc.s.SetContent(cx, cy, pointRune, nil, tcell.StyleDefault.Background(sc.bg).Foreground(rgb(c)))
}

func (sc *Screen) Present() { sc.s.Show() }

// Destroy restores the terminal.
func (sc *Screen) Destroy() {
	if sc.finished {
		return
	}
	sc.finished = true
	sc.s.Fini()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
