// Package game holds the one active session of the process and serializes
// every operation on it.
package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/minisudoku-go/internal/metrics"
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/session"
)

// State is a point-in-time view of the current session
type State struct {
	LoggedIn  bool
	Username  string
	Board     model.Board
	ElapsedMs int64
	Finished  bool
	Resumed   bool
	Returning bool
}

// Controller owns the current session. At most one user is logged in at a time.
type Controller struct {
	manager *session.Manager
	logger  *slog.Logger

	mu      sync.Mutex
	current *session.Session
}

// NewController creates a new GameController with nobody logged in
func NewController(manager *session.Manager, logger *slog.Logger) *Controller {
	return &Controller{
		manager: manager,
		logger:  logger,
	}
}

// Register creates an account without logging in
func (c *Controller) Register(ctx context.Context, username, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager.Register(ctx, c.current, username, password)
}

// Login starts a session for the user
func (c *Controller) Login(ctx context.Context, username, password string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.manager.Login(ctx, c.current, username, password)
	if err != nil {
		return c.stateLocked(), err
	}
	s.Timer.OnTick(func(elapsedMs int64) {
		metrics.ActiveGameElapsed.Set(float64(elapsedMs) / 1000)
	})
	c.current = s
	return c.stateLocked(), nil
}

// Logout saves progress and ends the session
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logoutLocked(ctx)
}

func (c *Controller) logoutLocked(ctx context.Context) error {
	if err := c.manager.Logout(ctx, c.current); err != nil {
		return err
	}
	c.current.Timer.OnTick(nil)
	c.current = nil
	metrics.ActiveGameElapsed.Set(0)
	return nil
}

// State returns the current session view
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Save stores progress for the current session
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager.Save(ctx, c.current)
}

// SetCell writes a value into the current board
func (c *Controller) SetCell(row, col, value int) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.manager.SetCell(c.current, row, col, value)
	return c.stateLocked(), err
}

// Check tests the current board for a solution
func (c *Controller) Check(ctx context.Context) (session.CheckResult, State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := c.manager.Check(ctx, c.current)
	return result, c.stateLocked(), err
}

// Reset starts a fresh puzzle for the current session
func (c *Controller) Reset(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.manager.Reset(ctx, c.current)
	return c.stateLocked(), err
}

// Tick advances the current session's timer. Safe to call when logged out.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.manager.Tick(c.current)
}

// Shutdown logs out any active session so its progress is kept
func (c *Controller) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	c.logger.Info("saving active session before shutdown",
		slog.String("username", c.current.Username),
	)
	return c.logoutLocked(ctx)
}

// caller holds mu
func (c *Controller) stateLocked() State {
	if c.current == nil {
		return State{}
	}
	return State{
		LoggedIn:  true,
		Username:  c.current.Username,
		Board:     c.current.Board,
		ElapsedMs: c.current.Elapsed(),
		Finished:  c.current.Finished,
		Resumed:   c.current.Resumed,
		Returning: c.current.Returning,
	}
}
