// Package rotation advances the cube's spin and derives its model transform.
package rotation

import "github.com/go-gl/mathgl/mgl32"

// Axis is the spin axis. HomogRotate3D expects a unit axis, so it is
// normalized when the rotation is built.
var Axis = mgl32.Vec3{0, 1, 1}

// Offset pushes the cube in front of the camera and slightly off center.
var Offset = mgl32.Vec3{-0.25, -0.25, -50}

// State is the accumulated spin angle.
type State struct {
	Angle float32 // radians, grows without bound
	Speed float32 // radians per second
}

// TransformSet is rebuilt from State every frame.
type TransformSet struct {
	Rotation    mgl32.Mat4
	Translation mgl32.Mat4
}

// New returns a State at angle zero spinning at speed rad/s.
func New(speed float32) *State {
	return &State{Speed: speed}
}

// Advance moves the angle forward by Speed*dt and returns the transforms
// for the new angle.
func (s *State) Advance(dt float32) TransformSet {
	s.Angle += s.Speed * dt
	return s.Transforms()
}

// Transforms builds the rotation and translation for the current angle.
func (s *State) Transforms() TransformSet {
	return TransformSet{
		Rotation:    mgl32.HomogRotate3D(s.Angle, Axis.Normalize()),
		Translation: mgl32.Translate3D(Offset.X(), Offset.Y(), Offset.Z()),
	}
}

// Model is translation * rotation.
func (t TransformSet) Model() mgl32.Mat4 {
	return t.Translation.Mul4(t.Rotation)
}
