package clock

import "time"

// FakeClock pins "today" so lead-time and cancellation-window rules can be
// tested against exact day boundaries.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *FakeClock) AdvanceDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}
