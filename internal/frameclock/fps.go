package frameclock

// FPSCounter counts frames over one second windows.
type FPSCounter struct {
	last   float64
	frames int
	start  bool
}

// Frame records one frame at now (seconds). Once a second has passed since
// the window opened it returns the frame count and true.
func (f *FPSCounter) Frame(now float64) (int, bool) {
	if !f.start {
		f.last = now
		f.start = true
	}
	f.frames++
	if now-f.last < 1.0 {
		return 0, false
	}
	fps := f.frames
	f.frames = 0
	f.last = now
	return fps, true
}
