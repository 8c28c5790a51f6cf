package progress

import (
	"context"
	"sync"

	"github.com/mcoot/minisudoku-go/internal/dependencies/clock"
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/storage"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
)

// Service stores each user's in-progress game. The last save wins.
type Service struct {
	codec *codec.Codec
	clock clock.Clock

	mu sync.Mutex
}

// New creates a new ProgressService
func New(c *codec.Codec, clock clock.Clock) *Service {
	return &Service{
		codec: c,
		clock: clock,
	}
}

// Save overwrites the user's snapshot with board and elapsed time
func (s *Service) Save(ctx context.Context, username string, board model.Board, elapsedMs int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadAll(ctx)
	if err != nil {
		return err
	}
	all[username] = model.ProgressSnapshot{
		Board:     board,
		ElapsedMs: elapsedMs,
		SavedAt:   s.clock.Now(),
	}
	return codec.Save(ctx, s.codec, storage.ProgressKey, all)
}

// Load returns the user's saved snapshot, or nil if none was saved
func (s *Service) Load(ctx context.Context, username string) (*model.ProgressSnapshot, error) {
	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, ok := all[username]
	if !ok {
		return nil, nil
	}
	return &snapshot, nil
}

// Has reports whether the user has a saved snapshot
func (s *Service) Has(ctx context.Context, username string) (bool, error) {
	snapshot, err := s.Load(ctx, username)
	return snapshot != nil, err
}

func (s *Service) loadAll(ctx context.Context) (map[string]model.ProgressSnapshot, error) {
	all, _, err := codec.Load[map[string]model.ProgressSnapshot](ctx, s.codec, storage.ProgressKey)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = make(map[string]model.ProgressSnapshot)
	}
	return all, nil
}
