// Package timer tracks elapsed play time against an injectable clock.
// Nothing in here schedules itself; a host calls Tick, usually through a Driver.
package timer

import (
	"sync"
	"time"

	"github.com/mcoot/minisudoku-go/internal/dependencies/clock"
)

// TickFunc receives the elapsed milliseconds on every tick while running
type TickFunc func(elapsedMs int64)

// Timer measures elapsed time for one game
type Timer struct {
	clock  clock.Clock
	onTick TickFunc

	mu        sync.Mutex
	running   bool
	startedAt time.Time
	offsetMs  int64
	elapsedMs int64
}

// New creates a stopped timer
func New(clock clock.Clock) *Timer {
	return &Timer{clock: clock}
}

// OnTick registers the callback invoked by Tick. Passing nil removes it.
func (t *Timer) OnTick(fn TickFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = fn
}

// Start begins measuring from fromElapsedMs, replacing any run in progress
func (t *Timer) Start(fromElapsedMs int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if fromElapsedMs < 0 {
		fromElapsedMs = 0
	}
	t.running = true
	t.startedAt = t.clock.Now()
	t.offsetMs = fromElapsedMs
	t.elapsedMs = fromElapsedMs
}

// Stop halts the timer and returns the final elapsed time.
// Only the first Stop after a Start changes anything.
func (t *Timer) Stop() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		t.elapsedMs = t.measure()
		t.running = false
	}
	return t.elapsedMs
}

// Tick recomputes elapsed time and notifies the callback if running
func (t *Timer) Tick() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.elapsedMs = t.measure()
	elapsed, fn := t.elapsedMs, t.onTick
	t.mu.Unlock()

	if fn != nil {
		fn(elapsed)
	}
}

// Elapsed returns the current elapsed time in milliseconds
func (t *Timer) Elapsed() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return t.measure()
	}
	return t.elapsedMs
}

// Running reports whether the timer is measuring
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// caller holds mu
func (t *Timer) measure() int64 {
	delta := t.clock.Now().Sub(t.startedAt).Milliseconds()
	if delta < 0 {
		delta = 0
	}
	return t.offsetMs + delta
}
