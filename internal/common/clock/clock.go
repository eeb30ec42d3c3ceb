package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/yahtzee/internal/common/clock Clock

// Clock reports the current time; games stamp their start and finish with it
type Clock interface {
	Now() time.Time
}

// System implements Clock with the wall clock in UTC
type System struct{}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
