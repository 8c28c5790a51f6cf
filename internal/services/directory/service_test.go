package directory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/credentials"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
	"github.com/mcoot/minisudoku-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *testutil.FlakyStore
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = testutil.NewFlakyStore()
	c := codec.New(s.store, codec.PolicyLenient, testutil.NopLogger())
	s.service = New(c, credentials.Plain{}, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) count() int {
	users, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	return len(users)
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	err := s.service.Register(s.ctx, "alice", "pw")
	s.Require().NoError(err)

	user, err := s.service.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Nil(user.BestTime)
	s.Zero(user.GamesPlayed)
	s.Zero(user.GamesWon)
	s.Zero(user.TotalTime)
}

func (s *ServiceSuite) TestRegisterBcryptLongPasswordIsInvalidInput() {
	c := codec.New(s.store, codec.PolicyLenient, testutil.NopLogger())
	service := New(c, credentials.Bcrypt{Cost: bcrypt.MinCost}, testutil.NopLogger())

	// 40 runes but 80 bytes
	err := service.Register(s.ctx, "alice", strings.Repeat("é", 40))
	s.ErrorIs(err, model.ErrInvalidInput)
	s.Zero(s.count())
}

func (s *ServiceSuite) TestRegisterTwiceFails() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw"))

	err := s.service.Register(s.ctx, "alice", "other")
	s.ErrorIs(err, model.ErrUsernameTaken)
	s.Equal(1, s.count())
}

func (s *ServiceSuite) TestRegisterIsCaseSensitive() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "pw"))
	s.Require().NoError(s.service.Register(s.ctx, "Alice", "pw"))
	s.Equal(2, s.count())
}

func (s *ServiceSuite) TestRegisterRequiresFields() {
	s.ErrorIs(s.service.Register(s.ctx, "", "pw"), model.ErrInvalidInput)
	s.ErrorIs(s.service.Register(s.ctx, "alice", ""), model.ErrInvalidInput)
	s.Equal(0, s.count())
}

func (s *ServiceSuite) TestRegisterKeepsInsertionOrder() {
	_ = s.service.Register(s.ctx, "c", "pw")
	_ = s.service.Register(s.ctx, "a", "pw")
	_ = s.service.Register(s.ctx, "b", "pw")

	users, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal("c", users[0].Username)
	s.Equal("a", users[1].Username)
	s.Equal("b", users[2].Username)
}

func (s *ServiceSuite) TestRegisterPersistenceFailure() {
	s.store.FailWrites = true

	err := s.service.Register(s.ctx, "alice", "pw")
	s.ErrorIs(err, model.ErrPersistence)

	s.store.FailWrites = false
	s.Equal(0, s.count())
}

// Authenticate tests

func (s *ServiceSuite) TestAuthenticateSucceeds() {
	_ = s.service.Register(s.ctx, "alice", "pw")

	user, err := s.service.Authenticate(s.ctx, "alice", "pw")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
}

func (s *ServiceSuite) TestAuthenticateWrongPassword() {
	_ = s.service.Register(s.ctx, "alice", "pw")

	_, err := s.service.Authenticate(s.ctx, "alice", "nope")
	s.ErrorIs(err, model.ErrWrongPassword)
	s.NotErrorIs(err, model.ErrUnknownUser)
}

func (s *ServiceSuite) TestAuthenticateUnknownUser() {
	_, err := s.service.Authenticate(s.ctx, "nobody", "pw")
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *ServiceSuite) TestAuthenticateWithBcrypt() {
	c := codec.New(s.store, codec.PolicyLenient, testutil.NopLogger())
	service := New(c, credentials.Bcrypt{Cost: bcrypt.MinCost}, testutil.NopLogger())
	s.Require().NoError(service.Register(s.ctx, "bob", "secret"))

	user, err := service.Get(s.ctx, "bob")
	s.Require().NoError(err)
	s.NotEqual("secret", user.Password)

	_, err = service.Authenticate(s.ctx, "bob", "secret")
	s.NoError(err)
	_, err = service.Authenticate(s.ctx, "bob", "wrong")
	s.ErrorIs(err, model.ErrWrongPassword)
}

// RecordGameResult tests

func (s *ServiceSuite) TestRecordGameResult() {
	_ = s.service.Register(s.ctx, "alice", "pw")

	s.Require().NoError(s.service.RecordGameResult(s.ctx, "alice", 1000, true))
	s.Require().NoError(s.service.RecordGameResult(s.ctx, "alice", 3000, false))

	user, err := s.service.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(2, user.GamesPlayed)
	s.Equal(1, user.GamesWon)
	s.Equal(int64(4000), user.TotalTime)
}

func (s *ServiceSuite) TestRecordGameResultUnknownUserIsNoop() {
	err := s.service.RecordGameResult(s.ctx, "nobody", 1000, true)
	s.NoError(err)
	s.Equal(0, s.count())
}

func (s *ServiceSuite) TestRecordGameResultOnlyTouchesNamedUser() {
	_ = s.service.Register(s.ctx, "alice", "pw")
	_ = s.service.Register(s.ctx, "bob", "pw")

	_ = s.service.RecordGameResult(s.ctx, "bob", 1000, true)

	alice, _ := s.service.Get(s.ctx, "alice")
	s.Zero(alice.GamesPlayed)
}

// UpdateBestTimeIfBetter tests

func (s *ServiceSuite) TestFirstBestTime() {
	_ = s.service.Register(s.ctx, "alice", "pw")

	previous, updated, err := s.service.UpdateBestTimeIfBetter(s.ctx, "alice", 5000)
	s.Require().NoError(err)
	s.True(updated)
	s.Nil(previous)

	user, _ := s.service.Get(s.ctx, "alice")
	s.Require().NotNil(user.BestTime)
	s.Equal(int64(5000), *user.BestTime)
}

func (s *ServiceSuite) TestSlowerTimeDoesNotReplaceBest() {
	_ = s.service.Register(s.ctx, "alice", "pw")
	_, _, _ = s.service.UpdateBestTimeIfBetter(s.ctx, "alice", 5000)

	previous, updated, err := s.service.UpdateBestTimeIfBetter(s.ctx, "alice", 7000)
	s.Require().NoError(err)
	s.False(updated)
	s.Nil(previous)

	user, _ := s.service.Get(s.ctx, "alice")
	s.Equal(int64(5000), *user.BestTime)
}

func (s *ServiceSuite) TestEqualTimeDoesNotReplaceBest() {
	_ = s.service.Register(s.ctx, "alice", "pw")
	_, _, _ = s.service.UpdateBestTimeIfBetter(s.ctx, "alice", 5000)

	_, updated, err := s.service.UpdateBestTimeIfBetter(s.ctx, "alice", 5000)
	s.Require().NoError(err)
	s.False(updated)
}

func (s *ServiceSuite) TestFasterTimeReturnsPrevious() {
	_ = s.service.Register(s.ctx, "alice", "pw")
	_, _, _ = s.service.UpdateBestTimeIfBetter(s.ctx, "alice", 5000)

	previous, updated, err := s.service.UpdateBestTimeIfBetter(s.ctx, "alice", 3000)
	s.Require().NoError(err)
	s.True(updated)
	s.Require().NotNil(previous)
	s.Equal(int64(5000), *previous)

	user, _ := s.service.Get(s.ctx, "alice")
	s.Equal(int64(3000), *user.BestTime)
}

func (s *ServiceSuite) TestBestTimeUnknownUser() {
	_, updated, err := s.service.UpdateBestTimeIfBetter(s.ctx, "nobody", 1000)
	s.NoError(err)
	s.False(updated)
}

// Storage edge cases

func (s *ServiceSuite) TestMalformedUsersTreatedAsEmpty() {
	_ = s.store.Set(s.ctx, "sudoku_users", "garbage")

	_, err := s.service.Authenticate(s.ctx, "admin", "admin123")
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *ServiceSuite) TestReadsAccountsWrittenByOriginalLayout() {
	_ = s.store.Set(s.ctx, "sudoku_users",
		`[{"username":"admin","password":"admin123","bestTime":null},{"username":"zed","password":"z","bestTime":4200,"gamesPlayed":3,"gamesWon":2,"totalTime":9000}]`)

	_, err := s.service.Authenticate(s.ctx, "admin", "admin123")
	s.Require().NoError(err)

	zed, err := s.service.Get(s.ctx, "zed")
	s.Require().NoError(err)
	s.Equal(int64(4200), *zed.BestTime)
	s.Equal(3, zed.GamesPlayed)
}
