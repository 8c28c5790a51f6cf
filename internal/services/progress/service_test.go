package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minisudoku-go/internal/dependencies/mocks"
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
	"github.com/mcoot/minisudoku-go/internal/storage/memory"
	"github.com/mcoot/minisudoku-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(codec.New(s.store, codec.PolicyLenient, testutil.NopLogger()), s.clock)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestLoadNeverSaved() {
	snapshot, err := s.service.Load(s.ctx, "alice")
	s.Require().NoError(err)
	s.Nil(snapshot)
}

func (s *ServiceSuite) TestSaveAndLoad() {
	board := model.Board{{1, 0, 3}, {2, 3, 0}, {0, 1, 2}}

	s.Require().NoError(s.service.Save(s.ctx, "alice", board, 12345))

	snapshot, err := s.service.Load(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(snapshot)
	s.Equal(board, snapshot.Board)
	s.Equal(int64(12345), snapshot.ElapsedMs)
	s.True(snapshot.SavedAt.Equal(s.clock.Now()))
}

func (s *ServiceSuite) TestSaveOverwrites() {
	first := model.Board{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	second := model.Board{{1, 2, 3}, {2, 3, 1}, {3, 1, 0}}

	_ = s.service.Save(s.ctx, "alice", first, 1000)
	s.clock.Advance(time.Minute)
	_ = s.service.Save(s.ctx, "alice", second, 2000)

	snapshot, _ := s.service.Load(s.ctx, "alice")
	s.Equal(second, snapshot.Board)
	s.Equal(int64(2000), snapshot.ElapsedMs)
	s.True(snapshot.SavedAt.Equal(s.clock.Now()))
}

func (s *ServiceSuite) TestSnapshotsAreKeyedByUser() {
	_ = s.service.Save(s.ctx, "alice", model.Board{}, 1000)

	has, err := s.service.Has(s.ctx, "alice")
	s.Require().NoError(err)
	s.True(has)

	has, err = s.service.Has(s.ctx, "bob")
	s.Require().NoError(err)
	s.False(has)
}

func (s *ServiceSuite) TestReadsOriginalLayout() {
	_ = s.store.Set(s.ctx, "sudoku_progress",
		`{"alice":{"board":[[1,2,3],[2,0,1],[3,1,0]],"time":4500,"date":"2024-01-01T12:00:00.000Z"}}`)

	snapshot, err := s.service.Load(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(snapshot)
	s.Equal(model.Board{{1, 2, 3}, {2, 0, 1}, {3, 1, 0}}, snapshot.Board)
	s.Equal(int64(4500), snapshot.ElapsedMs)
}
