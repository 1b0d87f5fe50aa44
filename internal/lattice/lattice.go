// Package lattice builds the static point cloud the cube is drawn from.
package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidParameter is returned for a side or step that would never
// terminate the sampling loops.
var ErrInvalidParameter = errors.New("invalid lattice parameter")

const maxReserve = 1 << 24

// Lattice is an ordered set of model-space points. It is written once by
// Generate and only read afterwards.
type Lattice []mgl32.Vec3

// Generate samples a cube of the given side length on a regular grid.
//
// Every coordinate runs from -sideSize/2 (inclusive) towards +sideSize/2
// (exclusive) in increments of step, iterating x outer, y middle, z inner.
func Generate(sideSize, step float32) (Lattice, error) {
	if !valid(sideSize) || !valid(step) {
		return nil, fmt.Errorf("%w: side=%v step=%v", ErrInvalidParameter, sideSize, step)
	}

	half := sideSize / 2
	// step smaller than the float32 spacing at half would stall the loops
	if half+step == half || -half+step == -half {
		return nil, fmt.Errorf("%w: step %v vanishes at %v", ErrInvalidParameter, step, half)
	}

	points := make(Lattice, 0, reserve(sideSize, step))
	for x := -half; x < half; x += step {
		for y := -half; y < half; y += step {
			for z := -half; z < half; z += step {
				points = append(points, mgl32.Vec3{x, y, z})
			}
		}
	}
	return points, nil
}

// Len returns the number of points.
func (l Lattice) Len() int { return len(l) }

// reserve is the per-axis sample count cubed, capped at maxReserve so huge
// lattices grow by append instead of failing the allocation up front.
func reserve(sideSize, step float32) int {
	n := math.Ceil(float64(sideSize) / float64(step))
	if c := n * n * n; c < maxReserve {
		return int(c)
	}
	return maxReserve
}

func valid(v float32) bool {
	f := float64(v)
	return v > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
