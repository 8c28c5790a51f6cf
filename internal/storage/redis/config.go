package redis

// DefaultKeyPrefix namespaces the store's keys within a shared Redis instance
const DefaultKeyPrefix = "minisudoku"

// Config holds Redis connection settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string
	// KeyPrefix is prepended to every key as "<prefix>:<key>"; empty disables namespacing
	KeyPrefix string

	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns the defaults for a single game server
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		KeyPrefix:    DefaultKeyPrefix,
		PoolSize:     4,
		MinIdleConns: 1,
	}
}
