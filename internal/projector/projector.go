// Package projector maps model-space lattice points to screen pixels.
package projector

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"pointcube/internal/camera"
	"pointcube/internal/lattice"
)

// minChunk keeps small lattices on one goroutine.
const minChunk = 4096

// Point is a screen coordinate in surface pixels.
type Point struct {
	X, Y int
}

// Project runs p through model, projection, perspective divide and the
// viewport mapping. The result's Z is window depth in [0,1] for points
// between the clip planes; nothing is clipped.
func Project(p mgl32.Vec3, model, projection mgl32.Mat4, vp camera.Viewport) mgl32.Vec3 {
	return mgl32.Project(p, model, projection, vp.X, vp.Y, vp.Width, vp.Height)
}

// ToScreen truncates a window coordinate toward zero. The surface's row 0 is
// its top row, so y grows downward on screen.
func ToScreen(win mgl32.Vec3) Point {
	return Point{X: int(win.X()), Y: int(win.Y())}
}

// Projector projects whole lattices into a reused buffer.
type Projector struct {
	// Workers is the number of goroutines ProjectAll may use. Values below
	// 2 project sequentially.
	Workers int

	buf []Point
}

// New returns a Projector using up to workers goroutines.
func New(workers int) *Projector {
	return &Projector{Workers: workers}
}

// ProjectAll projects every point of l. The returned slice is owned by the
// Projector and overwritten by the next call; its order matches l.
func (pr *Projector) ProjectAll(l lattice.Lattice, model mgl32.Mat4, cam *camera.Camera) []Point {
	if cap(pr.buf) < len(l) {
		pr.buf = make([]Point, len(l))
	}
	out := pr.buf[:len(l)]

	if pr.Workers < 2 || len(l) < 2*minChunk {
		project(out, l, model, cam)
		return out
	}

	chunk := (len(l) + pr.Workers - 1) / pr.Workers
	if chunk < minChunk {
		chunk = minChunk
	}
	var g errgroup.Group
	g.SetLimit(pr.Workers)
	for lo := 0; lo < len(l); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(l))
		g.Go(func() error {
			project(out[lo:hi], l[lo:hi], model, cam)
			return nil
		})
	}
	// workers only write their own slice of out and never fail
	_ = g.Wait()
	return out
}

func project(dst []Point, src lattice.Lattice, model mgl32.Mat4, cam *camera.Camera) {
	for i, p := range src {
		dst[i] = ToScreen(Project(p, model, cam.Projection, cam.Viewport))
	}
}
