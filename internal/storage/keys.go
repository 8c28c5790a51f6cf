package storage

// Top-level collections. Each is stored as a single JSON document.
const (
	// UsersKey holds the ordered list of registered accounts
	UsersKey = "sudoku_users"

	// ProgressKey holds the username -> saved progress mapping
	ProgressKey = "sudoku_progress"

	// ScoresKey is reserved; seeded but not read by any operation
	ScoresKey = "sudoku_scores"

	// HistoryKey holds the username -> ordered game history mapping
	HistoryKey = "sudoku_history"
)
