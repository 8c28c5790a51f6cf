package random

import "math/rand/v2"

// Random picks puzzle cells; tests swap in a queued mock
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Source draws from the runtime-seeded global generator in math/rand/v2,
// which is safe for concurrent use.
type Source struct{}

// New creates a Source
func New() *Source {
	return &Source{}
}

// Intn returns a uniformly random int in [0, n), or 0 when n <= 0
func (Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}
