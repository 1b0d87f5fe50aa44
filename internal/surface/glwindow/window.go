// Package glwindow is the default host: a glfw window that shows the
// software framebuffer as a scaled OpenGL texture.
//
// All methods must be called from the thread that called New, which must
// be locked with runtime.LockOSThread.
package glwindow

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pointcube/internal/frameclock"
	"pointcube/internal/host"
	"pointcube/internal/surface"
)

// Window implements host.Surface, host.EventSource and frameclock.Source.
type Window struct {
	win   *glfw.Window
	title string
	fb    *surface.Framebuffer
	fps   frameclock.FPSCounter

	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32

	pending   []host.Event
	glfwUp    bool
	destroyed bool
}

// New opens a window of width*scale x height*scale showing a width x height
// framebuffer.
func New(title string, width, height, scale int) (_ *Window, err error) {
	w := &Window{title: title, fb: surface.NewFramebuffer(width, height)}
	defer func() {
		if err != nil {
			w.Destroy()
		}
	}()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: could not initialize glfw: %v", host.ErrInit, err)
	}
	w.glfwUp = true

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Floating, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width*scale, height*scale, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create window: %v", host.ErrInit, err)
	}
	w.win = win
	w.win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: could not initialize OpenGL: %v", host.ErrInit, err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	if err := w.initGL(); err != nil {
		return nil, fmt.Errorf("%w: %v", host.ErrInit, err)
	}

	w.win.SetKeyCallback(w.onKey)
	w.win.SetCloseCallback(func(*glfw.Window) {
		w.pending = append(w.pending, host.Event{Kind: host.Quit})
	})
	return w, nil
}

func (w *Window) initGL() error {
	var err error
	w.program, err = newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(w.program)
	gl.Uniform1i(gl.GetUniformLocation(w.program, gl.Str("frame\x00")), 0)

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vpAttrib := uint32(gl.GetAttribLocation(w.program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vpAttrib)
	gl.VertexAttribPointer(vpAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))

	vtAttrib := uint32(gl.GetAttribLocation(w.program, gl.Str("vt\x00")))
	gl.EnableVertexAttribArray(vtAttrib)
	gl.VertexAttribPointer(vtAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &w.tex)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w.fb.Width()), int32(w.fb.Height()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.ClearColor(0, 0, 0, 1)
	return nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Release {
		return
	}
	ev := host.Event{Kind: host.KeyUp, Key: host.KeyOther}
	switch key {
	case glfw.KeyEscape:
		ev.Key = host.KeyEscape
	case glfw.KeyLeft:
		ev.Key = host.KeyLeft
	}
	w.pending = append(w.pending, ev)
}

// PollEvents processes the glfw queue and returns what arrived since the
// last call.
func (w *Window) PollEvents() []host.Event {
	glfw.PollEvents()
	evs := w.pending
	w.pending = nil
	return evs
}

func (w *Window) Clear(c color.RGBA)               { w.fb.Clear(c) }
func (w *Window) PlotPoint(x, y int, c color.RGBA) { w.fb.PlotPoint(x, y, c) }

// Present uploads the framebuffer, stretches it over the window and swaps.
func (w *Window) Present() {
	fbw, fbh := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.program)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w.fb.Width()), int32(w.fb.Height()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.fb.Img.Pix))
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	w.win.SwapBuffers()

	if fps, ok := w.fps.Frame(glfw.GetTime()); ok {
		w.win.SetTitle(fmt.Sprintf("%s | FPS: %d", w.title, fps))
	}
}

// Destroy releases GL objects, the window and glfw.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.win != nil {
		if w.tex != 0 {
			gl.DeleteTextures(1, &w.tex)
		}
		if w.vbo != 0 {
			gl.DeleteBuffers(1, &w.vbo)
		}
		if w.vao != 0 {
			gl.DeleteVertexArrays(1, &w.vao)
		}
		if w.program != 0 {
			gl.DeleteProgram(w.program)
		}
		w.win.Destroy()
	}
	if w.glfwUp {
		glfw.Terminate()
	}
}

// Counter, Frequency, Ticks and Sleep expose the glfw timer as a
// frameclock.Source.

func (w *Window) Counter() uint64   { return glfw.GetTimerValue() }
func (w *Window) Frequency() uint64 { return glfw.GetTimerFrequency() }
func (w *Window) Ticks() uint32     { return uint32(glfw.GetTime() * 1000) }

func (w *Window) Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
