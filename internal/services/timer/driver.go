package timer

import (
	"context"
	"time"
)

// DefaultInterval is the display refresh rate of the host tick
const DefaultInterval = time.Second

// Driver calls a tick function on a fixed interval
type Driver struct {
	interval time.Duration
	tick     func()
}

// NewDriver creates a Driver. A non-positive interval uses DefaultInterval.
func NewDriver(interval time.Duration, tick func()) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		interval: interval,
		tick:     tick,
	}
}

// Run blocks, ticking until ctx is done
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.tick()
		}
	}
}
