package directory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/credentials"
	"github.com/mcoot/minisudoku-go/internal/storage"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
)

// Service manages registered accounts, stored as a single ordered list.
// Every mutation rewrites the whole list.
type Service struct {
	codec    *codec.Codec
	verifier credentials.Verifier
	logger   *slog.Logger

	// serializes read-modify-write cycles within this process
	mu sync.Mutex
}

// New creates a new DirectoryService
func New(c *codec.Codec, verifier credentials.Verifier, logger *slog.Logger) *Service {
	return &Service{
		codec:    c,
		verifier: verifier,
		logger:   logger,
	}
}

// List returns all accounts in registration order
func (s *Service) List(ctx context.Context) ([]model.UserAccount, error) {
	users, _, err := codec.Load[[]model.UserAccount](ctx, s.codec, storage.UsersKey)
	return users, err
}

// Get returns the account with the exact username
func (s *Service) Get(ctx context.Context, username string) (*model.UserAccount, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(users, username); i >= 0 {
		return &users[i], nil
	}
	return nil, model.ErrUnknownUser
}

// Register adds a new account with zeroed stats
func (s *Service) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return model.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.List(ctx)
	if err != nil {
		return err
	}
	if indexOf(users, username) >= 0 {
		return model.ErrUsernameTaken
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		return err
	}

	users = append(users, model.UserAccount{
		Username: username,
		Password: stored,
	})
	if err := codec.Save(ctx, s.codec, storage.UsersKey, users); err != nil {
		return err
	}

	s.logger.Info("account registered", slog.String("username", username))
	return nil
}

// Authenticate checks credentials. Unknown usernames and wrong passwords
// return different errors so callers can tell the user which field is wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.UserAccount, error) {
	user, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if !s.verifier.Verify(user.Password, password) {
		return nil, model.ErrWrongPassword
	}
	return user, nil
}

// RecordGameResult counts a finished game against the account.
// Unknown usernames are ignored.
func (s *Service) RecordGameResult(ctx context.Context, username string, elapsedMs int64, completed bool) error {
	_, err := s.update(ctx, username, func(u *model.UserAccount) bool {
		u.GamesPlayed++
		if completed {
			u.GamesWon++
		}
		u.TotalTime += elapsedMs
		return true
	})
	return err
}

// UpdateBestTimeIfBetter records elapsedMs as the best time if there is none
// yet or it beats the current one. updated reports whether it did; previous
// is the best time it replaced (nil if this was the first).
func (s *Service) UpdateBestTimeIfBetter(ctx context.Context, username string, elapsedMs int64) (previous *int64, updated bool, err error) {
	updated, err = s.update(ctx, username, func(u *model.UserAccount) bool {
		if u.BestTime != nil && elapsedMs >= *u.BestTime {
			return false
		}
		previous = u.BestTime
		best := elapsedMs
		u.BestTime = &best
		return true
	})
	if err != nil || !updated {
		return nil, false, err
	}

	s.logger.Info("new best time",
		slog.String("username", username),
		slog.Int64("elapsed_ms", elapsedMs),
	)
	return previous, true, nil
}

// update applies fn to the named account and persists the whole list if fn
// reports a change. Missing accounts are a no-op.
func (s *Service) update(ctx context.Context, username string, fn func(*model.UserAccount) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(users, username)
	if i < 0 {
		return false, nil
	}
	if !fn(&users[i]) {
		return false, nil
	}
	if err := codec.Save(ctx, s.codec, storage.UsersKey, users); err != nil {
		return false, err
	}
	return true, nil
}

func indexOf(users []model.UserAccount, username string) int {
	for i := range users {
		if users[i].Username == username {
			return i
		}
	}
	return -1
}
