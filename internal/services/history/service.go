package history

import (
	"context"
	"sync"

	"github.com/mcoot/minisudoku-go/internal/dependencies/clock"
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/storage"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
)

// Service keeps an append-only log of finished games per user
type Service struct {
	codec *codec.Codec
	clock clock.Clock

	mu sync.Mutex
}

// New creates a new HistoryService
func New(c *codec.Codec, clock clock.Clock) *Service {
	return &Service{
		codec: c,
		clock: clock,
	}
}

// Append adds a finished game to the end of the user's log
func (s *Service) Append(ctx context.Context, username string, elapsedMs int64, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadAll(ctx)
	if err != nil {
		return err
	}
	all[username] = append(all[username], model.HistoryEntry{
		Timestamp: s.clock.Now(),
		ElapsedMs: elapsedMs,
		Completed: completed,
	})
	return codec.Save(ctx, s.codec, storage.HistoryKey, all)
}

// Recent returns up to n of the user's most recent games, newest first
func (s *Service) Recent(ctx context.Context, username string, n int) ([]model.HistoryEntry, error) {
	if n <= 0 {
		return []model.HistoryEntry{}, nil
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := all[username]

	start := len(entries) - n
	if start < 0 {
		start = 0
	}
	result := make([]model.HistoryEntry, 0, len(entries)-start)
	for i := len(entries) - 1; i >= start; i-- {
		result = append(result, entries[i])
	}
	return result, nil
}

func (s *Service) loadAll(ctx context.Context) (map[string][]model.HistoryEntry, error) {
	all, _, err := codec.Load[map[string][]model.HistoryEntry](ctx, s.codec, storage.HistoryKey)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = make(map[string][]model.HistoryEntry)
	}
	return all, nil
}
