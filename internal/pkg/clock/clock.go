package clock

import (
	"time"

	"shuttlesync/internal/pkg/calendar"
)

// Clock is the time source for everything that depends on "now" or "today".
// Today is evaluated in the business time zone, not the server's.
type Clock interface {
	Now() time.Time
	Today() calendar.Date
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *RealClock) Today() calendar.Date {
	return calendar.DateOf(c.Now())
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Today() calendar.Date {
	return calendar.DateOf(c.currentTime)
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
