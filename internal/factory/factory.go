package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/minisudoku-go/internal/config"
	"github.com/mcoot/minisudoku-go/internal/dependencies/clock"
	"github.com/mcoot/minisudoku-go/internal/dependencies/random"
	"github.com/mcoot/minisudoku-go/internal/services/credentials"
	"github.com/mcoot/minisudoku-go/internal/services/directory"
	"github.com/mcoot/minisudoku-go/internal/services/game"
	"github.com/mcoot/minisudoku-go/internal/services/history"
	"github.com/mcoot/minisudoku-go/internal/services/progress"
	"github.com/mcoot/minisudoku-go/internal/services/puzzle"
	"github.com/mcoot/minisudoku-go/internal/services/session"
	"github.com/mcoot/minisudoku-go/internal/services/stats"
	"github.com/mcoot/minisudoku-go/internal/storage"
	badgerstorage "github.com/mcoot/minisudoku-go/internal/storage/badger"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
	"github.com/mcoot/minisudoku-go/internal/storage/memory"
	redisstorage "github.com/mcoot/minisudoku-go/internal/storage/redis"
	"github.com/mcoot/minisudoku-go/internal/storage/seed"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeBadger = "badger"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.KeyValueStore
	Codec *codec.Codec

	// External dependencies
	Clock    clock.Clock
	Random   random.Random
	Verifier credentials.Verifier

	// Services
	DirectoryService *directory.Service
	ProgressService  *progress.Service
	HistoryService   *history.Service
	PuzzleEngine     *puzzle.Engine
	StatsService     *stats.Service
	SessionManager   *session.Manager
	GameController   *game.Controller

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "badger")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// BadgerConfig holds badger settings (optional, defaults to badgerstorage.DefaultConfig())
	BadgerConfig *badgerstorage.Config
	// DecodePolicy decides how malformed stored data is handled (default lenient)
	DecodePolicy codec.DecodePolicy
	// Credentials selects the password verifier ("plain" or "bcrypt")
	Credentials string
	// AdminPassword is the bootstrap admin's password on first run
	AdminPassword string
	// HistoryLimit is the default number of recent games returned
	HistoryLimit int
}

// ConfigFromEnv maps loaded environment settings onto a factory Config
func ConfigFromEnv(env *config.Config, logger *slog.Logger) (Config, error) {
	policy, err := codec.ParsePolicy(env.Storage.DecodePolicy)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Logger:        logger,
		StorageType:   env.Storage.Type,
		DecodePolicy:  policy,
		Credentials:   env.Game.Credentials,
		AdminPassword: env.Game.AdminPassword,
		HistoryLimit:  env.Game.HistoryLimit,
	}

	switch env.Storage.Type {
	case StorageTypeRedis:
		if env.Storage.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = env.Storage.RedisURL
		redisCfg.KeyPrefix = env.Storage.RedisPrefix
		cfg.RedisConfig = &redisCfg
	case StorageTypeBadger:
		badgerCfg := badgerstorage.DefaultConfig()
		if env.Storage.BadgerPath != "" {
			badgerCfg.Path = env.Storage.BadgerPath
		}
		cfg.BadgerConfig = &badgerCfg
	}
	return cfg, nil
}

// New creates a new application with all dependencies wired and the
// store seeded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	verifier, err := credentials.New(cfg.Credentials)
	if err != nil {
		return nil, err
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(store, clock.New(), random.New(), verifier, cfg, logger)
	if closer != nil {
		app.closers = append(app.closers, closer)
	}

	if err := seed.Run(ctx, store, verifier, cfg.AdminPassword, logger); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("seeding storage: %w", err)
	}
	return app, nil
}

func openStore(cfg Config) (storage.KeyValueStore, io.Closer, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return redisStore, redisStore, nil
	case StorageTypeBadger:
		badgerCfg := badgerstorage.DefaultConfig()
		if cfg.BadgerConfig != nil {
			badgerCfg = *cfg.BadgerConfig
		}
		badgerStore, err := badgerstorage.New(badgerCfg)
		if err != nil {
			return nil, nil, err
		}
		return badgerStore, badgerStore, nil
	default:
		return nil, nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'badger'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.KeyValueStore,
	clk clock.Clock,
	rnd random.Random,
	verifier credentials.Verifier,
	cfg Config,
	logger *slog.Logger,
) *App {
	c := codec.New(store, cfg.DecodePolicy, logger)

	directoryService := directory.New(c, verifier, logger)
	progressService := progress.New(c, clk)
	historyService := history.New(c, clk)
	puzzleEngine := puzzle.New(rnd)
	statsService := stats.New(directoryService, historyService, cfg.HistoryLimit)
	sessionManager := session.NewManager(directoryService, progressService, historyService, puzzleEngine, clk, logger)
	gameController := game.NewController(sessionManager, logger)

	return &App{
		Store:            store,
		Codec:            c,
		Clock:            clk,
		Random:           rnd,
		Verifier:         verifier,
		DirectoryService: directoryService,
		ProgressService:  progressService,
		HistoryService:   historyService,
		PuzzleEngine:     puzzleEngine,
		StatsService:     statsService,
		SessionManager:   sessionManager,
		GameController:   gameController,
	}
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
