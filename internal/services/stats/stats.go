package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/mcoot/minisudoku-go/internal/model"
)

// TimePlaceholder is displayed where no time is available
const TimePlaceholder = "--:--"

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Rank     int
	Username string
	BestTime int64
}

// Summary holds a user's derived stats
type Summary struct {
	Username        string
	BestTime        *int64
	BestTimeDisplay string
	GamesPlayed     int
	GamesWon        int
	WinRatePct      int
	WinRateDisplay  string
	AvgTime         *int64
	AvgTimeDisplay  string
}

// Leaderboard ranks users with a best time, fastest first. Users without a
// best time are left out; ties keep their original order.
func Leaderboard(users []model.UserAccount) []LeaderboardEntry {
	ranked := make([]model.UserAccount, 0, len(users))
	for _, u := range users {
		if u.BestTime != nil {
			ranked = append(ranked, u)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].BestTime < *ranked[j].BestTime
	})

	entries := make([]LeaderboardEntry, len(ranked))
	for i, u := range ranked {
		entries[i] = LeaderboardEntry{
			Rank:     i + 1,
			Username: u.Username,
			BestTime: *u.BestTime,
		}
	}
	return entries
}

// Summarize derives display stats for one user
func Summarize(user model.UserAccount) Summary {
	summary := Summary{
		Username:        user.Username,
		BestTime:        user.BestTime,
		BestTimeDisplay: TimePlaceholder,
		GamesPlayed:     user.GamesPlayed,
		GamesWon:        user.GamesWon,
		AvgTimeDisplay:  TimePlaceholder,
	}
	if user.BestTime != nil {
		summary.BestTimeDisplay = FormatTime(*user.BestTime)
	}

	if user.GamesPlayed > 0 {
		summary.WinRatePct = int(math.Round(float64(user.GamesWon) / float64(user.GamesPlayed) * 100))
		avg := int64(math.Round(float64(user.TotalTime) / float64(user.GamesPlayed)))
		summary.AvgTime = &avg
		summary.AvgTimeDisplay = FormatTime(avg)
	}
	summary.WinRateDisplay = fmt.Sprintf("%d%%", summary.WinRatePct)

	return summary
}

// FormatTime renders milliseconds as m:ss
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds := ms / 1000
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
