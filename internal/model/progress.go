package model

import "time"

// ProgressSnapshot is a user's saved in-progress game.
// At most one exists per user; each save overwrites the previous one.
type ProgressSnapshot struct {
	Board     Board     `json:"board"`
	ElapsedMs int64     `json:"time"`
	SavedAt   time.Time `json:"date"`
}
