package badger

import "time"

// Config holds settings for the embedded badger store
type Config struct {
	// Path is the directory holding the database files
	Path string

	// InMemory keeps all data in memory; Path is ignored. Used by tests.
	InMemory bool

	// GCInterval is how often value log garbage collection runs; 0 disables it
	GCInterval time.Duration
}

// DefaultConfig returns sensible defaults for the badger store
func DefaultConfig() Config {
	return Config{
		Path:       "data/minisudoku",
		GCInterval: 5 * time.Minute,
	}
}
