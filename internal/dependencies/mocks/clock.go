package mocks

import (
	"time"

	"github.com/Captainbleu/Boggle/internal/dependencies/clock"
)

// MockClock is a Clock frozen at a fixed instant. Time moves only when
// a test calls Advance.
type MockClock struct {
	current time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock frozen at t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the frozen time
func (c *MockClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
