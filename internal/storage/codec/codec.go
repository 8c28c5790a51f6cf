// Package codec serializes typed records to and from the string values of a
// storage.KeyValueStore.
package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/storage"
)

// DecodePolicy selects what happens when a stored value cannot be decoded
type DecodePolicy string

const (
	// PolicyLenient treats malformed data as absent
	PolicyLenient DecodePolicy = "lenient"
	// PolicyStrict reports malformed data as model.ErrCorruptData
	PolicyStrict DecodePolicy = "strict"
)

// ParsePolicy converts a config string into a DecodePolicy
func ParsePolicy(s string) (DecodePolicy, error) {
	switch DecodePolicy(s) {
	case "", PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("invalid decode policy %q: must be 'lenient' or 'strict'", s)
	}
}

// Codec reads and writes JSON records in a key-value store
type Codec struct {
	store  storage.KeyValueStore
	policy DecodePolicy
	logger *slog.Logger
}

// New creates a Codec over store
func New(store storage.KeyValueStore, policy DecodePolicy, logger *slog.Logger) *Codec {
	if policy == "" {
		policy = PolicyLenient
	}
	return &Codec{
		store:  store,
		policy: policy,
		logger: logger,
	}
}

// Store returns the underlying key-value store
func (c *Codec) Store() storage.KeyValueStore {
	return c.store
}

// Load decodes the value stored under key into a T.
// ok is false when the key is missing, or malformed under the lenient policy.
func Load[T any](ctx context.Context, c *Codec, key string) (value T, ok bool, err error) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil || !found {
		return value, false, err
	}

	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, false, c.malformed(key, err)
	}
	return value, true, nil
}

// Save encodes value and stores it under key
func Save[T any](ctx context.Context, c *Codec, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, string(data))
}

// Encode returns the stored form of value, for seeding defaults
func Encode[T any](value T) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// malformed applies the decode policy to a decoding failure
func (c *Codec) malformed(key string, err error) error {
	if c.policy == PolicyStrict {
		return fmt.Errorf("%w: %s: %v", model.ErrCorruptData, key, err)
	}
	c.logger.Warn("discarding malformed stored data",
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
	return nil
}
