package storage

import (
	"context"
	"fmt"

	"github.com/mcoot/minisudoku-go/internal/model"
)

// KeyValueStore is a persistent string-keyed store of string values.
// Higher-level services serialize their records into its values.
type KeyValueStore interface {
	// Get returns the value for key; ok is false if the key has never been set
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any existing value
	Set(ctx context.Context, key, value string) error

	// InitIfAbsent stores defaultValue under key only if the key has no value
	InitIfAbsent(ctx context.Context, key, defaultValue string) error
}

// WrapErr marks a backend failure as a persistence error
func WrapErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %q: %w: %w", op, key, model.ErrPersistence, err)
}
