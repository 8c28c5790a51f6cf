package testutil

import (
	"context"
	"errors"

	"github.com/mcoot/minisudoku-go/internal/storage"
	"github.com/mcoot/minisudoku-go/internal/storage/memory"
)

// ErrInjected is the underlying error returned by a failing FlakyStore
var ErrInjected = errors.New("injected store failure")

// FlakyStore is an in-memory store whose writes can be made to fail
type FlakyStore struct {
	*memory.Storage
	// FailWrites fails every write
	FailWrites bool
	// FailKeys fails writes to the listed keys only
	FailKeys map[string]bool
}

// NewFlakyStore creates a FlakyStore that initially succeeds
func NewFlakyStore() *FlakyStore {
	return &FlakyStore{Storage: memory.New()}
}

var _ storage.KeyValueStore = (*FlakyStore)(nil)

func (s *FlakyStore) Set(ctx context.Context, key, value string) error {
	if s.FailWrites || s.FailKeys[key] {
		return storage.WrapErr("set", key, ErrInjected)
	}
	return s.Storage.Set(ctx, key, value)
}
