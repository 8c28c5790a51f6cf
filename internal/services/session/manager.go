// Package session implements the login state machine and gameplay flow
// for a single player.
package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/minisudoku-go/internal/dependencies/clock"
	"github.com/mcoot/minisudoku-go/internal/metrics"
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/directory"
	"github.com/mcoot/minisudoku-go/internal/services/history"
	"github.com/mcoot/minisudoku-go/internal/services/progress"
	"github.com/mcoot/minisudoku-go/internal/services/puzzle"
	"github.com/mcoot/minisudoku-go/internal/services/timer"
)

// Manager moves a player between logged out and logged in and runs their game
type Manager struct {
	directory *directory.Service
	progress  *progress.Service
	history   *history.Service
	puzzles   puzzle.Generator
	clock     clock.Clock
	logger    *slog.Logger
}

// NewManager creates a new SessionManager
func NewManager(
	directory *directory.Service,
	progress *progress.Service,
	history *history.Service,
	puzzles puzzle.Generator,
	clock clock.Clock,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		directory: directory,
		progress:  progress,
		history:   history,
		puzzles:   puzzles,
		clock:     clock,
		logger:    logger,
	}
}

// Register creates an account. It is only allowed while logged out and
// does not log the new user in.
func (m *Manager) Register(ctx context.Context, cur *Session, username, password string) error {
	if cur != nil {
		return model.ErrAlreadyLoggedIn
	}

	err := m.directory.Register(ctx, username, password)
	metrics.RegistrationsTotal.WithLabelValues(registrationResult(err)).Inc()
	return err
}

// Login authenticates the user and starts their game, resuming saved
// progress when there is any
func (m *Manager) Login(ctx context.Context, cur *Session, username, password string) (*Session, error) {
	if cur != nil {
		return nil, model.ErrAlreadyLoggedIn
	}

	user, err := m.directory.Authenticate(ctx, username, password)
	metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
	if err != nil {
		m.logger.Info("login failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	saved, err := m.progress.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Username:  user.Username,
		Timer:     timer.New(m.clock),
		Returning: user.GamesPlayed > 0 || saved != nil,
	}
	if saved != nil {
		s.Board = saved.Board
		s.Resumed = true
		// a solved board saved on logout stays finished until reset
		s.Finished = puzzle.IsSolved(saved.Board)
		s.Timer.Start(saved.ElapsedMs)
		if s.Finished {
			s.Timer.Stop()
		}
	} else {
		s.Board = m.puzzles.NewPuzzle()
		s.Timer.Start(0)
	}

	m.logger.Info("user logged in",
		slog.String("username", s.Username),
		slog.Bool("resumed", s.Resumed),
		slog.Bool("returning", s.Returning),
	)
	return s, nil
}

// Logout stops the timer and saves the board. If the save fails the
// session is left running and the error returned.
func (m *Manager) Logout(ctx context.Context, s *Session) error {
	if s == nil {
		return model.ErrNotLoggedIn
	}

	wasRunning := s.Timer.Running()
	elapsed := s.Timer.Stop()
	if err := m.progress.Save(ctx, s.Username, s.Board, elapsed); err != nil {
		if wasRunning {
			s.Timer.Start(elapsed)
		}
		m.logger.Error("failed to save progress on logout",
			slog.String("username", s.Username),
			slog.String("error", err.Error()),
		)
		return err
	}

	m.logger.Info("user logged out",
		slog.String("username", s.Username),
		slog.Int64("elapsed_ms", elapsed),
	)
	return nil
}

// Save stores the current board and elapsed time without stopping play
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if s == nil {
		return model.ErrNotLoggedIn
	}
	return m.progress.Save(ctx, s.Username, s.Board, s.Timer.Elapsed())
}

// SetCell writes value at row, col. A value of 0 clears the cell.
func (m *Manager) SetCell(s *Session, row, col, value int) error {
	if s == nil {
		return model.ErrNotLoggedIn
	}
	if s.Finished {
		return model.ErrGameFinished
	}

	board, err := puzzle.SetCell(s.Board, row, col, value)
	if err != nil {
		return err
	}
	s.Board = board
	return nil
}

// Check tests the board. A solved board stops the timer and records the
// game, its stats and any new best time.
func (m *Manager) Check(ctx context.Context, s *Session) (CheckResult, error) {
	if s == nil {
		return CheckResult{}, model.ErrNotLoggedIn
	}
	if s.Finished {
		return CheckResult{}, model.ErrGameFinished
	}

	if !puzzle.IsSolved(s.Board) {
		return CheckResult{
			ElapsedMs: s.Timer.Elapsed(),
			Message:   MessageKeepTrying,
		}, nil
	}

	elapsed := s.Timer.Stop()
	if err := m.recordGame(ctx, s, elapsed, true); err != nil {
		s.Timer.Start(elapsed)
		return CheckResult{}, err
	}
	s.Finished = true

	result := CheckResult{
		Solved:    true,
		ElapsedMs: elapsed,
		Message:   MessageSolved,
	}

	previous, updated, err := m.directory.UpdateBestTimeIfBetter(ctx, s.Username, elapsed)
	if err != nil {
		return result, err
	}
	if updated {
		result.NewRecord = true
		result.PreviousBest = previous
		metrics.BestTimeRecordsTotal.Inc()
	}
	metrics.SolveDuration.Observe(float64(elapsed) / 1000)

	m.logger.Info("puzzle solved",
		slog.String("username", s.Username),
		slog.Int64("elapsed_ms", elapsed),
		slog.Bool("new_record", result.NewRecord),
	)
	return result, nil
}

// Reset discards the current board for a fresh puzzle and restarts the
// timer from zero. An unfinished game with time on the clock is recorded
// as abandoned first.
func (m *Manager) Reset(ctx context.Context, s *Session) error {
	if s == nil {
		return model.ErrNotLoggedIn
	}

	wasRunning := s.Timer.Running()
	elapsed := s.Timer.Stop()
	if !s.Finished && elapsed > 0 {
		if err := m.recordGame(ctx, s, elapsed, false); err != nil {
			if wasRunning {
				s.Timer.Start(elapsed)
			}
			return err
		}
		m.logger.Info("game abandoned",
			slog.String("username", s.Username),
			slog.Int64("elapsed_ms", elapsed),
		)
	}

	s.Board = m.puzzles.NewPuzzle()
	s.Finished = false
	s.Resumed = false
	s.historyRecorded = false
	s.Timer.Start(0)
	return nil
}

// Tick forwards a host tick to the session timer
func (m *Manager) Tick(s *Session) {
	if s == nil {
		return
	}
	s.Timer.Tick()
}

// recordGame appends the game to history and then to the user's stats.
// A history entry stored by an earlier failed attempt is not appended again.
func (m *Manager) recordGame(ctx context.Context, s *Session, elapsedMs int64, completed bool) error {
	if !s.historyRecorded {
		if err := m.history.Append(ctx, s.Username, elapsedMs, completed); err != nil {
			return err
		}
		s.historyRecorded = true
	}
	if err := m.directory.RecordGameResult(ctx, s.Username, elapsedMs, completed); err != nil {
		m.logger.Error("failed to record game result",
			slog.String("username", s.Username),
			slog.Bool("completed", completed),
			slog.String("error", err.Error()),
		)
		return err
	}

	outcome := metrics.OutcomeAbandoned
	if completed {
		outcome = metrics.OutcomeSolved
	}
	metrics.GamesFinishedTotal.WithLabelValues(outcome).Inc()
	return nil
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, model.ErrUnknownUser):
		return "unknown_user"
	case errors.Is(err, model.ErrWrongPassword):
		return "wrong_password"
	default:
		return "error"
	}
}

func registrationResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, model.ErrUsernameTaken):
		return "username_taken"
	case errors.Is(err, model.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
