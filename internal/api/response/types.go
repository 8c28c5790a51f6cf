package response

import (
	"time"

	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/game"
	"github.com/mcoot/minisudoku-go/internal/services/session"
	"github.com/mcoot/minisudoku-go/internal/services/stats"
)

// Message is a plain confirmation
type Message struct {
	Message string `json:"message"`
}

// Session represents the current session in API responses
type Session struct {
	LoggedIn  bool         `json:"logged_in"`
	Username  string       `json:"username,omitempty"`
	Board     *model.Board `json:"board,omitempty"`
	ElapsedMs int64        `json:"elapsed_ms"`
	Elapsed   string       `json:"elapsed"`
	Finished  bool         `json:"finished"`
	Resumed   bool         `json:"resumed"`
	Returning bool         `json:"returning"`
}

// SessionFromState converts a game.State
func SessionFromState(s game.State) Session {
	resp := Session{
		LoggedIn:  s.LoggedIn,
		Username:  s.Username,
		ElapsedMs: s.ElapsedMs,
		Elapsed:   stats.FormatTime(s.ElapsedMs),
		Finished:  s.Finished,
		Resumed:   s.Resumed,
		Returning: s.Returning,
	}
	if s.LoggedIn {
		board := s.Board
		resp.Board = &board
	}
	return resp
}

// CheckResult is the response for a solution check
type CheckResult struct {
	Solved         bool    `json:"solved"`
	Message        string  `json:"message"`
	ElapsedMs      int64   `json:"elapsed_ms"`
	Elapsed        string  `json:"elapsed"`
	NewRecord      bool    `json:"new_record"`
	PreviousBestMs *int64  `json:"previous_best_ms,omitempty"`
	Session        Session `json:"session"`
}

// CheckResultFrom converts a session.CheckResult and the state after it
func CheckResultFrom(r session.CheckResult, s game.State) CheckResult {
	return CheckResult{
		Solved:         r.Solved,
		Message:        r.Message,
		ElapsedMs:      r.ElapsedMs,
		Elapsed:        stats.FormatTime(r.ElapsedMs),
		NewRecord:      r.NewRecord,
		PreviousBestMs: r.PreviousBest,
		Session:        SessionFromState(s),
	}
}

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	Username   string `json:"username"`
	BestTimeMs int64  `json:"best_time_ms"`
	BestTime   string `json:"best_time"`
}

// Leaderboard is the response for the leaderboard endpoint
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFrom converts ranked stats entries
func LeaderboardFrom(entries []stats.LeaderboardEntry) Leaderboard {
	resp := Leaderboard{Entries: make([]LeaderboardEntry, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = LeaderboardEntry{
			Rank:       e.Rank,
			Username:   e.Username,
			BestTimeMs: e.BestTime,
			BestTime:   stats.FormatTime(e.BestTime),
		}
	}
	return resp
}

// PlayerStats is the response for a player's stats
type PlayerStats struct {
	Username    string `json:"username"`
	BestTimeMs  *int64 `json:"best_time_ms"`
	BestTime    string `json:"best_time"`
	GamesPlayed int    `json:"games_played"`
	GamesWon    int    `json:"games_won"`
	WinRatePct  int    `json:"win_rate_pct"`
	WinRate     string `json:"win_rate"`
	AvgTimeMs   *int64 `json:"avg_time_ms"`
	AvgTime     string `json:"avg_time"`
}

// PlayerStatsFrom converts a stats.Summary
func PlayerStatsFrom(s stats.Summary) PlayerStats {
	return PlayerStats{
		Username:    s.Username,
		BestTimeMs:  s.BestTime,
		BestTime:    s.BestTimeDisplay,
		GamesPlayed: s.GamesPlayed,
		GamesWon:    s.GamesWon,
		WinRatePct:  s.WinRatePct,
		WinRate:     s.WinRateDisplay,
		AvgTimeMs:   s.AvgTime,
		AvgTime:     s.AvgTimeDisplay,
	}
}

// HistoryEntry is one recorded game
type HistoryEntry struct {
	Date      time.Time `json:"date"`
	ElapsedMs int64     `json:"elapsed_ms"`
	Elapsed   string    `json:"elapsed"`
	Completed bool      `json:"completed"`
}

// History is the response for a player's recent games, newest first
type History struct {
	Username string         `json:"username"`
	Entries  []HistoryEntry `json:"entries"`
}

// HistoryFrom converts history entries
func HistoryFrom(username string, entries []model.HistoryEntry) History {
	resp := History{Username: username, Entries: make([]HistoryEntry, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = HistoryEntry{
			Date:      e.Timestamp,
			ElapsedMs: e.ElapsedMs,
			Elapsed:   stats.FormatTime(e.ElapsedMs),
			Completed: e.Completed,
		}
	}
	return resp
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
