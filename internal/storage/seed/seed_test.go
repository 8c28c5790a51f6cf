package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/credentials"
	"github.com/mcoot/minisudoku-go/internal/services/directory"
	"github.com/mcoot/minisudoku-go/internal/storage"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
	"github.com/mcoot/minisudoku-go/internal/storage/memory"
	"github.com/mcoot/minisudoku-go/internal/testutil"
)

type SeedSuite struct {
	suite.Suite
	store *memory.Storage
	ctx   context.Context
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}

func (s *SeedSuite) SetupTest() {
	s.store = memory.New()
	s.ctx = context.Background()
}

func (s *SeedSuite) directory(v credentials.Verifier) *directory.Service {
	c := codec.New(s.store, codec.PolicyStrict, testutil.NopLogger())
	return directory.New(c, v, testutil.NopLogger())
}

func (s *SeedSuite) TestCreatesAllCollections() {
	s.Require().NoError(Run(s.ctx, s.store, credentials.Plain{}, "", testutil.NopLogger()))

	for _, key := range []string{storage.UsersKey, storage.ProgressKey, storage.ScoresKey, storage.HistoryKey} {
		_, ok, err := s.store.Get(s.ctx, key)
		s.Require().NoError(err)
		s.True(ok, key)
	}
	s.Equal(4, s.store.Len())
}

func (s *SeedSuite) TestAdminCanLogIn() {
	s.Require().NoError(Run(s.ctx, s.store, credentials.Plain{}, "", testutil.NopLogger()))

	user, err := s.directory(credentials.Plain{}).Authenticate(s.ctx, AdminUsername, DefaultAdminPassword)
	s.Require().NoError(err)
	s.Nil(user.BestTime)
	s.Zero(user.GamesPlayed)
}

func (s *SeedSuite) TestAdminPasswordIsHashed() {
	v := credentials.Bcrypt{Cost: 4}
	s.Require().NoError(Run(s.ctx, s.store, v, "s3cret", testutil.NopLogger()))

	dir := s.directory(v)
	user, err := dir.Get(s.ctx, AdminUsername)
	s.Require().NoError(err)
	s.NotEqual("s3cret", user.Password)

	_, err = dir.Authenticate(s.ctx, AdminUsername, "s3cret")
	s.NoError(err)
}

func (s *SeedSuite) TestIsIdempotent() {
	s.Require().NoError(Run(s.ctx, s.store, credentials.Plain{}, "", testutil.NopLogger()))
	dir := s.directory(credentials.Plain{})
	s.Require().NoError(dir.Register(s.ctx, "alice", "pw"))

	s.Require().NoError(Run(s.ctx, s.store, credentials.Plain{}, "changed", testutil.NopLogger()))

	users, err := dir.List(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 2)
	_, err = dir.Authenticate(s.ctx, AdminUsername, DefaultAdminPassword)
	s.NoError(err)
}

func (s *SeedSuite) TestRegisterAdminTaken() {
	s.Require().NoError(Run(s.ctx, s.store, credentials.Plain{}, "", testutil.NopLogger()))

	err := s.directory(credentials.Plain{}).Register(s.ctx, AdminUsername, "x")
	s.ErrorIs(err, model.ErrUsernameTaken)
}
