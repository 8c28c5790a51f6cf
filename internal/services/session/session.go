package session

import (
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/timer"
)

// Session is the state of one logged-in user. A nil *Session means logged out.
type Session struct {
	Username string
	Board    model.Board
	Timer    *timer.Timer

	// Finished is set once the board has been solved and recorded
	Finished bool
	// Resumed is true when the board came from saved progress
	Resumed bool
	// Returning is true when the user had played before or had saved progress
	Returning bool

	// historyRecorded is set once the current game's history entry is stored,
	// so a retried Check or Reset after a failed stats write does not append it twice
	historyRecorded bool
}

// Elapsed returns the elapsed play time of the current game
func (s *Session) Elapsed() int64 {
	return s.Timer.Elapsed()
}

// CheckResult is the outcome of a solution check
type CheckResult struct {
	Solved    bool
	ElapsedMs int64
	// NewRecord is set when this solve became the user's best time
	NewRecord bool
	// PreviousBest is the best time replaced by a new record, nil if it was the first
	PreviousBest *int64
	Message      string
}

// Messages shown to the player after a check
const (
	MessageSolved     = "Congratulations! Puzzle solved correctly!"
	MessageKeepTrying = "Not quite right. Keep trying!"
)
