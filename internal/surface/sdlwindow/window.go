//go:build sdl

// Package sdlwindow is the SDL2 host: an accelerated renderer with a logical
// size, so SDL does the scaling and plots points directly.
package sdlwindow

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"pointcube/internal/host"
)

// Window implements host.Surface, host.EventSource and frameclock.Source.
type Window struct {
	win       *sdl.Window
	renderer  *sdl.Renderer
	sdlUp     bool
	destroyed bool
}

// New opens a width*scale x height*scale window rendering at width x height.
func New(title string, width, height, scale int) (_ *Window, err error) {
	w := &Window{}
	defer func() {
		if err != nil {
			w.Destroy()
		}
	}()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("%w: could not initialize SDL: %v", host.ErrInit, err)
	}
	w.sdlUp = true

	w.win, err = sdl.CreateWindow(title, 0, 0, int32(width*scale), int32(height*scale),
		sdl.WINDOW_ALWAYS_ON_TOP|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create window: %v", host.ErrInit, err)
	}

	w.renderer, err = sdl.CreateRenderer(w.win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create renderer: %v", host.ErrInit, err)
	}
	if err := w.renderer.SetLogicalSize(int32(width), int32(height)); err != nil {
		return nil, fmt.Errorf("%w: could not set logical size: %v", host.ErrInit, err)
	}
	return w, nil
}

// PollEvents drains the SDL event queue.
func (w *Window) PollEvents() []host.Event {
	var evs []host.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			evs = append(evs, host.Event{Kind: host.Quit})
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYUP {
				continue
			}
			key := host.KeyOther
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				key = host.KeyEscape
			case sdl.K_LEFT:
				key = host.KeyLeft
			}
			evs = append(evs, host.Event{Kind: host.KeyUp, Key: key})
		}
	}
	return evs
}

func (w *Window) Clear(c color.RGBA) {
	_ = w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	_ = w.renderer.Clear()
}

// PlotPoint draws in logical coordinates; SDL drops points off the target.
func (w *Window) PlotPoint(x, y int, c color.RGBA) {
	_ = w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	_ = w.renderer.DrawPoint(int32(x), int32(y))
}

func (w *Window) Present() { w.renderer.Present() }

// Destroy releases the renderer, the window and SDL.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	if w.win != nil {
		_ = w.win.Destroy()
	}
	if w.sdlUp {
		sdl.Quit()
	}
}

func (w *Window) Counter() uint64   { return sdl.GetPerformanceCounter() }
func (w *Window) Frequency() uint64 { return sdl.GetPerformanceFrequency() }
func (w *Window) Ticks() uint32     { return sdl.GetTicks() }
func (w *Window) Sleep(ms uint32)   { sdl.Delay(ms) }
