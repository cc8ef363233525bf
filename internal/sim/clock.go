package sim

import "math"

// Clock turns wall-clock milliseconds into whole logical steps at a
// mutable updates-per-second rate. The fractional remainder carries over
// between frames so step timing does not drift.
type Clock struct {
	last    int64
	started bool
	acc     float64
	ups     float64

	// maxSteps caps DueSteps when positive. Zero means uncapped.
	maxSteps int
}

// NewClock returns an unstarted clock running at ups steps per second.
func NewClock(ups float64) *Clock {
	return &Clock{ups: ups}
}

// Start pins the reference time without accumulating anything.
func (c *Clock) Start(nowMillis int64) {
	c.last = nowMillis
	c.started = true
}

// Advance accumulates elapsed*ups since the previous sample. A clock that
// was never started treats the first sample as its reference time.
func (c *Clock) Advance(nowMillis int64) {
	if !c.started {
		c.Start(nowMillis)
		return
	}
	elapsed := nowMillis - c.last
	c.last = nowMillis
	if elapsed <= 0 {
		return
	}
	c.acc += float64(elapsed) * c.ups / 1000
}

// DueSteps returns the whole steps pending. It does not mutate state.
func (c *Clock) DueSteps() int {
	n := int(math.Floor(c.acc))
	if c.maxSteps > 0 && n > c.maxSteps {
		return c.maxSteps
	}
	return n
}

// Consume drops the whole part of the accumulator and keeps the fraction.
// With a cap in place, whole steps beyond the cap are dropped as well.
func (c *Clock) Consume() {
	c.acc -= math.Floor(c.acc)
}

// SetRate changes the rate for future Advance calls. Pending accumulation
// is left as is.
func (c *Clock) SetRate(ups float64) { c.ups = ups }

// Rate returns the current steps per second.
func (c *Clock) Rate() float64 { return c.ups }

// SetMaxSteps caps the steps reported per frame. n <= 0 removes the cap.
func (c *Clock) SetMaxSteps(n int) {
	if n < 0 {
		n = 0
	}
	c.maxSteps = n
}
