package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/lougreen/dicelab/internal/common/clock Clock

// Clock abstracts time lookups so tests can pin game timestamps.
type Clock interface {
	Now() time.Time
}

// System implements the Clock interface using the system clock
type System struct{}

// NewSystem creates a system-backed clock
func NewSystem() *System {
	return &System{}
}

// Now returns the current time
func (c *System) Now() time.Time {
	return time.Now()
}
