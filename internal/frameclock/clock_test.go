package frameclock

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeSource is a microsecond counter that only moves when told to.
type fakeSource struct {
	us     uint64
	slept  []uint32
	ticksB uint32 // extra offset applied to Ticks
}

func (f *fakeSource) Counter() uint64   { return f.us }
func (f *fakeSource) Frequency() uint64 { return 1_000_000 }
func (f *fakeSource) Ticks() uint32     { return uint32(f.us/1000) + f.ticksB }
func (f *fakeSource) Sleep(ms uint32) {
	f.slept = append(f.slept, ms)
	f.us += uint64(ms) * 1000
}

func (f *fakeSource) work(ms float64) { f.us += uint64(ms * 1000) }

func TestWaitMs(t *testing.T) {
	Convey("Wait time is floored target minus elapsed", t, func() {
		So(WaitMs(TargetFrameMs, 0), ShouldEqual, float32(16))
		So(WaitMs(TargetFrameMs, 5.5), ShouldEqual, float32(11))
		So(WaitMs(TargetFrameMs, 16), ShouldEqual, float32(0))
		So(WaitMs(TargetFrameMs, 16.666), ShouldEqual, float32(0))
		So(WaitMs(TargetFrameMs, 17), ShouldBeLessThan, float32(0))
		So(WaitMs(TargetFrameMs, 40), ShouldEqual, float32(-24))
	})
}

func TestClockTick(t *testing.T) {
	Convey("Given a clock over a fake source", t, func() {
		src := &fakeSource{us: 5_000_000}
		c := New(src, TargetFrameMs)

		Convey("A fast frame sleeps out the rest of the interval", func() {
			src.work(4)
			dt := c.Tick()
			So(src.slept, ShouldResemble, []uint32{12})
			So(dt, ShouldAlmostEqual, 0.016, 1e-6)

			tm := c.Timing()
			So(tm.ElapsedMs, ShouldAlmostEqual, 4, 1e-3)
			So(tm.WaitMs, ShouldEqual, float32(12))
			So(tm.LastUpdate, ShouldEqual, tm.Time)
		})

		Convey("A slow frame does not sleep and is not compensated", func() {
			src.work(30)
			dt := c.Tick()
			So(src.slept, ShouldBeEmpty)
			So(c.Timing().WaitMs, ShouldBeLessThan, float32(0))
			So(dt, ShouldAlmostEqual, 0.030, 1e-6)

			src.work(2)
			c.Tick()
			So(src.slept, ShouldResemble, []uint32{14})
		})

		Convey("An exactly floored frame sleeps zero", func() {
			src.work(16.5)
			c.Tick()
			So(src.slept, ShouldResemble, []uint32{0})
		})

		Convey("Elapsed time is measured from after the previous sleep", func() {
			src.work(10)
			c.Tick()
			start := c.Timing().Start
			So(start, ShouldEqual, src.us)

			src.work(3)
			c.Tick()
			So(c.Timing().End-start, ShouldEqual, uint64(3000))
			So(src.slept, ShouldResemble, []uint32{6, 13})
		})

		Convey("Delta time survives tick counter wraparound", func() {
			src.ticksB = ^uint32(0) - uint32(src.us/1000) - 5
			c = New(src, TargetFrameMs)
			src.work(20)
			So(c.Tick(), ShouldAlmostEqual, 0.020, 1e-6)
		})
	})
}

func TestFPSCounter(t *testing.T) {
	Convey("FPS is reported once per second", t, func() {
		var f FPSCounter
		reports := []int{}
		for i := 0; i <= 120; i++ {
			if fps, ok := f.Frame(float64(i) / 60); ok {
				reports = append(reports, fps)
			}
		}
		So(reports, ShouldResemble, []int{61, 60})
	})
}

func TestSystemSource(t *testing.T) {
	Convey("System source counts nanoseconds and milliseconds", t, func() {
		s := NewSystemSource()
		So(s.Frequency(), ShouldEqual, uint64(1_000_000_000))
		c0, t0 := s.Counter(), s.Ticks()
		s.Sleep(2)
		So(s.Counter(), ShouldBeGreaterThan, c0)
		So(s.Ticks()-t0, ShouldBeGreaterThanOrEqualTo, uint32(2))
	})
}
