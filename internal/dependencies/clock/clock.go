package clock

import "time"

// Clock is the source of wall time for timers and persisted timestamps
type Clock interface {
	Now() time.Time
}

// System reads the host clock. Times are in UTC so persisted records compare
// and serialize the same regardless of the server's zone.
type System struct{}

// New creates a System clock
func New() *System {
	return &System{}
}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
