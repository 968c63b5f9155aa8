package clock

import "time"

// Clock is an injectable time source so time-window logic can be tested
// without sleeping
type Clock interface {
	Now() time.Time
}

type clock struct{}

// New returns a Clock backed by the wall clock
func New() Clock {
	return clock{}
}

func (clock) Now() time.Time {
	return time.Now()
}

// Managed is a hand-driven clock for tests
type Managed struct {
	startTime time.Time
	offset    time.Duration
}

// NewManaged returns a Managed clock frozen at startTime
func NewManaged(startTime time.Time) *Managed {
	return &Managed{startTime: startTime}
}

// Now returns the current managed time
func (c *Managed) Now() time.Time {
	return c.startTime.Add(c.offset)
}

// WarpForward moves the managed time forward and returns the new time
func (c *Managed) WarpForward(offset time.Duration) time.Time {
	c.offset += offset
	return c.startTime.Add(c.offset)
}
