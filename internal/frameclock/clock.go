// Package frameclock paces the render loop to a fixed frame interval and
// measures the delta-time used to scale animation.
package frameclock

import "math"

// TargetFrameMs is the frame interval for ~60 Hz.
const TargetFrameMs float32 = 16.666

// Source is the host's timer. Counter/Frequency is the high resolution
// clock used for pacing; Ticks is the coarser millisecond counter used for
// delta-time.
type Source interface {
	Counter() uint64
	Frequency() uint64
	Ticks() uint32
	Sleep(ms uint32)
}

// Timing is the record of the most recent Tick.
type Timing struct {
	Start      uint64  // counter value after the previous frame's sleep
	End        uint64  // counter value at the start of this tick
	ElapsedMs  float32 // time spent on the previous frame
	WaitMs     float32 // floor(target - elapsed), may be negative
	LastUpdate uint32  // tick counter of the previous frame
	Time       uint32  // tick counter of this frame
	DeltaTime  float32 // seconds between Time and LastUpdate
}

// Clock paces frames without catch-up: overshooting one frame never
// shortens the next.
type Clock struct {
	src      Source
	targetMs float32
	fr       Timing
}

// New creates a Clock seeded from src so that the first Tick measures from
// construction time.
func New(src Source, targetMs float32) *Clock {
	return &Clock{
		src:      src,
		targetMs: targetMs,
		fr: Timing{
			Start:      src.Counter(),
			LastUpdate: src.Ticks(),
		},
	}
}

// Tick sleeps out the rest of the frame interval and returns the seconds
// elapsed since the previous Tick.
func (c *Clock) Tick() float32 {
	fr := &c.fr
	fr.End = c.src.Counter()
	fr.ElapsedMs = float32(fr.End-fr.Start) / float32(c.src.Frequency()) * 1000
	fr.WaitMs = WaitMs(c.targetMs, fr.ElapsedMs)
	if fr.WaitMs >= 0 {
		c.src.Sleep(uint32(fr.WaitMs))
	}

	fr.Start = c.src.Counter()
	fr.Time = c.src.Ticks()
	// uint32 subtraction survives the ~49 day tick wraparound
	fr.DeltaTime = float32(fr.Time-fr.LastUpdate) / 1000
	fr.LastUpdate = fr.Time
	return fr.DeltaTime
}

// Timing returns the record of the last Tick.
func (c *Clock) Timing() Timing {
	return c.fr
}

// WaitMs is the whole number of milliseconds left in a frame of targetMs
// after elapsedMs. Negative results mean the frame is already late.
func WaitMs(targetMs, elapsedMs float32) float32 {
	return float32(math.Floor(float64(targetMs - elapsedMs)))
}
