package model

import "time"

// HistoryEntry records one finished game. Entries are immutable once appended.
type HistoryEntry struct {
	Timestamp time.Time `json:"date"`
	ElapsedMs int64     `json:"time"`
	Completed bool      `json:"completed"` // false for abandoned games
}
