package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minisudoku-go/internal/dependencies/mocks"
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/credentials"
	"github.com/mcoot/minisudoku-go/internal/services/directory"
	"github.com/mcoot/minisudoku-go/internal/services/history"
	"github.com/mcoot/minisudoku-go/internal/services/progress"
	"github.com/mcoot/minisudoku-go/internal/services/puzzle"
	"github.com/mcoot/minisudoku-go/internal/services/session"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
	"github.com/mcoot/minisudoku-go/internal/storage/memory"
	"github.com/mcoot/minisudoku-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	clock      *mocks.MockClock
	progress   *progress.Service
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	c := codec.New(memory.New(), codec.PolicyLenient, testutil.NopLogger())
	dir := directory.New(c, credentials.Plain{}, testutil.NopLogger())
	s.progress = progress.New(c, s.clock)
	manager := session.NewManager(
		dir,
		s.progress,
		history.New(c, s.clock),
		puzzle.New(mocks.NewMockRandom()),
		s.clock,
		testutil.NopLogger(),
	)
	s.controller = NewController(manager, testutil.NopLogger())

	s.Require().NoError(s.controller.Register(s.ctx, "alice", "pw"))
}

func (s *ControllerSuite) TestStartsLoggedOut() {
	state := s.controller.State()
	s.False(state.LoggedIn)
	s.Empty(state.Username)
}

func (s *ControllerSuite) TestLoginSetsCurrentSession() {
	state, err := s.controller.Login(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	s.True(state.LoggedIn)
	s.Equal("alice", state.Username)
	s.Equal(4, state.Board.EmptyCount())
	s.Equal(state, s.controller.State())
}

func (s *ControllerSuite) TestFailedLoginStaysLoggedOut() {
	state, err := s.controller.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrWrongPassword)
	s.False(state.LoggedIn)
	s.False(s.controller.State().LoggedIn)
}

func (s *ControllerSuite) TestSecondLoginRejected() {
	_, err := s.controller.Login(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	_, err = s.controller.Login(s.ctx, "alice", "pw")
	s.ErrorIs(err, model.ErrAlreadyLoggedIn)

	err = s.controller.Register(s.ctx, "bob", "pw")
	s.ErrorIs(err, model.ErrAlreadyLoggedIn)
	s.Equal("alice", s.controller.State().Username)
}

func (s *ControllerSuite) TestLogoutClearsSession() {
	_, err := s.controller.Login(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	s.Require().NoError(s.controller.Logout(s.ctx))
	s.False(s.controller.State().LoggedIn)

	s.ErrorIs(s.controller.Logout(s.ctx), model.ErrNotLoggedIn)
}

func (s *ControllerSuite) TestGameplayRequiresLogin() {
	_, err := s.controller.SetCell(0, 0, 1)
	s.ErrorIs(err, model.ErrNotLoggedIn)

	_, _, err = s.controller.Check(s.ctx)
	s.ErrorIs(err, model.ErrNotLoggedIn)

	_, err = s.controller.Reset(s.ctx)
	s.ErrorIs(err, model.ErrNotLoggedIn)

	s.ErrorIs(s.controller.Save(s.ctx), model.ErrNotLoggedIn)
}

func (s *ControllerSuite) TestSetCellReturnsState() {
	_, err := s.controller.Login(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	state, err := s.controller.SetCell(0, 0, 1)
	s.Require().NoError(err)
	s.Equal(1, state.Board[0][0])
}

func (s *ControllerSuite) TestTickUpdatesElapsed() {
	_, err := s.controller.Login(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	s.clock.Advance(3 * time.Second)
	s.controller.Tick()
	s.Equal(int64(3000), s.controller.State().ElapsedMs)
}

func (s *ControllerSuite) TestTickWhenLoggedOut() {
	s.NotPanics(func() { s.controller.Tick() })
}

func (s *ControllerSuite) TestShutdownSavesActiveSession() {
	_, err := s.controller.Login(s.ctx, "alice", "pw")
	s.Require().NoError(err)
	s.clock.Advance(9 * time.Second)

	s.Require().NoError(s.controller.Shutdown(s.ctx))
	s.False(s.controller.State().LoggedIn)

	snap, err := s.progress.Load(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(snap)
	s.Equal(int64(9000), snap.ElapsedMs)
}

func (s *ControllerSuite) TestShutdownWhenLoggedOut() {
	s.NoError(s.controller.Shutdown(s.ctx))
}

func (s *ControllerSuite) TestConcurrentTicksAndMoves() {
	_, err := s.controller.Login(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.controller.Tick()
		}()
		go func(v int) {
			defer wg.Done()
			_, _ = s.controller.SetCell(1, 1, v%4)
		}(i)
	}
	wg.Wait()

	s.True(s.controller.State().LoggedIn)
}
