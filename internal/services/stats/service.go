package stats

import (
	"context"

	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/directory"
	"github.com/mcoot/minisudoku-go/internal/services/history"
)

// DefaultHistoryLimit is how many recent games are shown by default
const DefaultHistoryLimit = 10

// Service derives leaderboard and per-user stats from stored data
type Service struct {
	directory    *directory.Service
	history      *history.Service
	historyLimit int
}

// New creates a new StatsService
func New(directory *directory.Service, history *history.Service, historyLimit int) *Service {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Service{
		directory:    directory,
		history:      history,
		historyLimit: historyLimit,
	}
}

// Leaderboard ranks all registered users by best time
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := s.directory.List(ctx)
	if err != nil {
		return nil, err
	}
	return Leaderboard(users), nil
}

// Summary returns derived stats for one user
func (s *Service) Summary(ctx context.Context, username string) (Summary, error) {
	user, err := s.directory.Get(ctx, username)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(*user), nil
}

// History returns up to n recent games for the user, newest first.
// n <= 0 uses the configured default.
func (s *Service) History(ctx context.Context, username string, n int) ([]model.HistoryEntry, error) {
	if _, err := s.directory.Get(ctx, username); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = s.historyLimit
	}
	return s.history.Recent(ctx, username, n)
}
