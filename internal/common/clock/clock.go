package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/raidbot/internal/common/clock Clock

// Clock tells the time. Retention windows are measured against it.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct {
	// Location converts the time when set
	Location *time.Location
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	if c.Location != nil {
		return time.Now().In(c.Location)
	}
	return time.Now()
}
