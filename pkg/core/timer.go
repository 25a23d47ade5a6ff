package core

import "time"

// FixedStep paces generations at a fixed interval independently of the frame
// rate of whoever polls it.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. Non-positive
// intervals fall back to 50ms. The first poll always fires.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.interval
	return fs
}

// SetInterval changes the pacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	f.interval = interval
}

// Interval returns the configured pacing.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether a generation is due. At most one step is reported
// per call; a backlog larger than one interval is dropped.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		if f.accumulator > f.interval {
			f.accumulator = 0
		}
		return true
	}
	return false
}
