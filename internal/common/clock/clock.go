package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/hotdice/internal/common/clock Clock

// Clock reports the current time. Repositories stamp records through it so
// tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements Clock using the system clock, always in UTC
type DefaultClock struct{}

// New returns the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current UTC time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
