package factory

import (
	"context"
	"time"

	"github.com/mcoot/minisudoku-go/internal/dependencies/mocks"
	"github.com/mcoot/minisudoku-go/internal/services/credentials"
	"github.com/mcoot/minisudoku-go/internal/storage/seed"
	"github.com/mcoot/minisudoku-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	// FlakyStore backs the app; set FailWrites to simulate storage outages
	FlakyStore *testutil.FlakyStore
}

// NewTestApp creates a seeded App backed by an in-memory store, with mocked
// clock and randomness
func NewTestApp() *TestApp {
	store := testutil.NewFlakyStore()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := testutil.NopLogger()

	app := newWithDependencies(store, mockClock, mockRandom, credentials.Plain{}, Config{}, logger)
	if err := seed.Run(context.Background(), store, credentials.Plain{}, "", logger); err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		FlakyStore: store,
	}
}
