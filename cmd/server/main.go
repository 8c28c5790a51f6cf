package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/minisudoku-go/internal/api"
	"github.com/mcoot/minisudoku-go/internal/config"
	"github.com/mcoot/minisudoku-go/internal/factory"
	"github.com/mcoot/minisudoku-go/internal/logging"
	"github.com/mcoot/minisudoku-go/internal/services/timer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	env, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.New(logging.Options{Level: env.Log.Level, File: env.Log.File})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer closeQuietly(logCloser)
	slog.SetDefault(logger)

	factoryCfg, err := factory.ConfigFromEnv(env, logger)
	if err != nil {
		return err
	}

	// Create application factory; this also seeds the store on first run
	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		StatsService:   app.StatsService,
	})
	server := api.NewServer(router, api.ServerConfigFrom(env.HTTP), logger)
	if err := server.Listen(); err != nil {
		return err
	}

	// Drive the session timer from a host ticker
	driver := timer.NewDriver(env.Game.TickInterval, app.GameController.Tick)
	go driver.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", factoryCfg.StorageType),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	// Save the active player's progress before the listener goes away
	shutdownCtx := context.Background()
	if err := app.GameController.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to save active session", slog.String("error", err.Error()))
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
