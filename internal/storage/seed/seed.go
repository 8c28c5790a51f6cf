// Package seed initializes the stored collections on first run.
package seed

import (
	"context"
	"log/slog"

	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/credentials"
	"github.com/mcoot/minisudoku-go/internal/storage"
	"github.com/mcoot/minisudoku-go/internal/storage/codec"
)

// AdminUsername is the bootstrap account created on first run
const AdminUsername = "admin"

// DefaultAdminPassword is used when no admin password is configured
const DefaultAdminPassword = "admin123"

// Run creates any missing collection with its empty value, and the
// accounts collection with the bootstrap admin. Existing data is left alone.
func Run(ctx context.Context, store storage.KeyValueStore, verifier credentials.Verifier, adminPassword string, logger *slog.Logger) error {
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}
	stored, err := verifier.Hash(adminPassword)
	if err != nil {
		return err
	}

	users, err := codec.Encode([]model.UserAccount{{
		Username: AdminUsername,
		Password: stored,
	}})
	if err != nil {
		return err
	}

	defaults := []struct {
		key   string
		value string
	}{
		{storage.UsersKey, users},
		{storage.ProgressKey, "{}"},
		{storage.ScoresKey, "{}"},
		{storage.HistoryKey, "{}"},
	}
	for _, d := range defaults {
		if err := store.InitIfAbsent(ctx, d.key, d.value); err != nil {
			return err
		}
	}

	logger.Debug("storage seeded")
	return nil
}
