package badger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mcoot/minisudoku-go/internal/storage"
)

// Storage is an embedded on-disk implementation of the key-value store,
// the durable single-machine counterpart of browser local storage
type Storage struct {
	db *badger.DB

	stopGC    chan struct{}
	closeOnce sync.Once
}

// New opens (or creates) the badger database described by cfg
func New(cfg Config) (*Storage, error) {
	opts := badger.DefaultOptions(cfg.Path).WithLogger(nil)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	s := &Storage{
		db:     db,
		stopGC: make(chan struct{}),
	}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		go s.runGC(cfg.GCInterval)
	}
	return s, nil
}

// Close stops background GC and closes the database
func (s *Storage) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stopGC)
		err = s.db.Close()
	})
	return err
}

// Ensure Storage implements the interface
var _ storage.KeyValueStore = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	found := true
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false, storage.WrapErr("get", key, err)
	}
	return value, found, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	return storage.WrapErr("set", key, err)
}

// InitIfAbsent checks and writes inside one transaction; badger aborts the
// commit with ErrConflict if another writer touched the key in between.
func (s *Storage) InitIfAbsent(ctx context.Context, key, defaultValue string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set([]byte(key), []byte(defaultValue))
	})
	return storage.WrapErr("init", key, err)
}

func (s *Storage) runGC(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopGC:
			return
		case <-ticker.C:
			// RunValueLogGC returns nil while it still finds files worth rewriting
			for s.db.RunValueLogGC(0.7) == nil {
			}
		}
	}
}
