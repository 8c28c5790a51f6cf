package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minisudoku-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestGetMissingKey() {
	_, ok, err := s.storage.Get(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StorageSuite) TestSetAndGet() {
	err := s.storage.Set(s.ctx, "sudoku_users", `[{"username":"admin"}]`)
	s.Require().NoError(err)

	value, ok, err := s.storage.Get(s.ctx, "sudoku_users")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(`[{"username":"admin"}]`, value)
}

func (s *StorageSuite) TestKeysAreNamespaced() {
	_ = s.storage.Set(s.ctx, "sudoku_users", "[]")

	s.True(s.mini.Exists("minisudoku:sudoku_users"))
	s.False(s.mini.Exists("sudoku_users"))
}

func (s *StorageSuite) TestCustomAndEmptyPrefix() {
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})

	custom := NewWithClient(client, Config{KeyPrefix: "staging"})
	s.Require().NoError(custom.Set(s.ctx, "sudoku_users", "[]"))
	s.True(s.mini.Exists("staging:sudoku_users"))

	bare := NewWithClient(client, Config{})
	s.Require().NoError(bare.Set(s.ctx, "sudoku_scores", "{}"))
	s.True(s.mini.Exists("sudoku_scores"))
}

func (s *StorageSuite) TestValuesHaveNoTTL() {
	_ = s.storage.Set(s.ctx, "sudoku_history", "{}")

	ttl := s.mini.TTL("minisudoku:sudoku_history")
	s.Equal(time.Duration(0), ttl, "Stored values should not expire")
}

func (s *StorageSuite) TestInitIfAbsentSetsDefault() {
	s.Require().NoError(s.storage.InitIfAbsent(s.ctx, "sudoku_progress", "{}"))

	value, ok, err := s.storage.Get(s.ctx, "sudoku_progress")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("{}", value)
}

func (s *StorageSuite) TestInitIfAbsentIsNoopWhenPresent() {
	_ = s.storage.Set(s.ctx, "sudoku_progress", `{"alice":{}}`)

	s.Require().NoError(s.storage.InitIfAbsent(s.ctx, "sudoku_progress", "{}"))

	value, _, _ := s.storage.Get(s.ctx, "sudoku_progress")
	s.Equal(`{"alice":{}}`, value)
}

func (s *StorageSuite) TestFailuresArePersistenceErrors() {
	s.mini.Close()

	_, _, err := s.storage.Get(s.ctx, "sudoku_users")
	s.ErrorIs(err, model.ErrPersistence)

	err = s.storage.Set(s.ctx, "sudoku_users", "[]")
	s.ErrorIs(err, model.ErrPersistence)
}
