// Package camera holds the fixed perspective projection and viewport.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Clip planes of the projection.
const (
	Near float32 = 0.1
	Far  float32 = 100.0
)

// Viewport is the screen rectangle normalized device coordinates map into.
type Viewport struct {
	X, Y, Width, Height int
}

// Camera is immutable after New and safe to share between goroutines.
type Camera struct {
	FOV        float32 // degrees
	Aspect     float32
	Projection mgl32.Mat4
	Viewport   Viewport
}

// New builds the camera for a screenWidth x screenHeight surface.
//
// The aspect ratio is the integer quotient screenWidth / screenHeight, so
// 320x240 yields 1.0 and the image is horizontally stretched on screen.
func New(fovDeg float32, screenWidth, screenHeight int) *Camera {
	aspect := float32(screenWidth / screenHeight)
	return &Camera{
		FOV:        fovDeg,
		Aspect:     aspect,
		Projection: mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, Near, Far),
		Viewport:   Viewport{X: 0, Y: 0, Width: screenWidth, Height: screenHeight},
	}
}
