package frameclock

import "time"

// SystemSource implements Source on the monotonic clock of the time package.
type SystemSource struct {
	base time.Time
}

// NewSystemSource returns a SystemSource whose counters start at zero now.
func NewSystemSource() *SystemSource {
	return &SystemSource{base: time.Now()}
}

func (s *SystemSource) Counter() uint64   { return uint64(time.Since(s.base)) }
func (s *SystemSource) Frequency() uint64 { return uint64(time.Second) }
func (s *SystemSource) Ticks() uint32     { return uint32(time.Since(s.base) / time.Millisecond) }

func (s *SystemSource) Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
