package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/minisudoku-go/internal/api/response"
	"github.com/mcoot/minisudoku-go/internal/model"
	"github.com/mcoot/minisudoku-go/internal/services/stats"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(response.Message{Message: msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	case response.CheckResult:
		o.printCheckResult(v)
	case response.Leaderboard:
		o.printLeaderboard(v)
	case response.PlayerStats:
		o.printPlayerStats(v)
	case response.History:
		o.printHistory(v)
	case response.Health:
		fmt.Fprintf(o.out, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s response.Session) {
	if !s.LoggedIn {
		fmt.Fprintln(o.out, "Not logged in")
		return
	}

	if s.Returning && s.Resumed {
		fmt.Fprintf(o.out, "Welcome back, %s! Progress loaded.\n", s.Username)
	} else if s.Returning {
		fmt.Fprintf(o.out, "Welcome back, %s!\n", s.Username)
	}
	fmt.Fprintf(o.out, "Player: %s\n", s.Username)
	fmt.Fprintf(o.out, "Time: %s\n", s.Elapsed)
	if s.Finished {
		fmt.Fprintln(o.out, "Solved! Reset to play again.")
	}
	if s.Board != nil {
		fmt.Fprintln(o.out)
		o.printBoard(*s.Board)
	}
}

func (o *Output) printBoard(b model.Board) {
	// Print column headers
	fmt.Fprint(o.out, "    ")
	for col := 0; col < model.BoardSize; col++ {
		fmt.Fprintf(o.out, " %d ", col)
	}
	fmt.Fprintln(o.out)

	border := "   +"
	for col := 0; col < model.BoardSize; col++ {
		border += "---"
	}
	border += "+"

	fmt.Fprintln(o.out, border)
	for row := 0; row < model.BoardSize; row++ {
		fmt.Fprintf(o.out, " %d |", row)
		for col := 0; col < model.BoardSize; col++ {
			if b[row][col] == 0 {
				fmt.Fprint(o.out, " . ")
			} else {
				fmt.Fprintf(o.out, " %d ", b[row][col])
			}
		}
		fmt.Fprintln(o.out, "|")
	}
	fmt.Fprintln(o.out, border)
}

func (o *Output) printCheckResult(r response.CheckResult) {
	fmt.Fprintln(o.out, r.Message)
	if !r.Solved {
		return
	}

	fmt.Fprintf(o.out, "Time: %s\n", r.Elapsed)
	if r.NewRecord {
		if r.PreviousBestMs != nil {
			fmt.Fprintf(o.out, "New best time! Previous best: %s\n", stats.FormatTime(*r.PreviousBestMs))
		} else {
			fmt.Fprintln(o.out, "New best time!")
		}
	}
}

func (o *Output) printLeaderboard(l response.Leaderboard) {
	if len(l.Entries) == 0 {
		fmt.Fprintln(o.out, "No completed games yet")
		return
	}
	for _, e := range l.Entries {
		fmt.Fprintf(o.out, "%2d. %-16s %s\n", e.Rank, e.Username, e.BestTime)
	}
}

func (o *Output) printPlayerStats(s response.PlayerStats) {
	fmt.Fprintf(o.out, "Player: %s\n", s.Username)
	fmt.Fprintf(o.out, "Best Time: %s\n", s.BestTime)
	fmt.Fprintf(o.out, "Games Played: %d\n", s.GamesPlayed)
	fmt.Fprintf(o.out, "Win Rate: %s\n", s.WinRate)
	fmt.Fprintf(o.out, "Average Time: %s\n", s.AvgTime)
}

func (o *Output) printHistory(h response.History) {
	if len(h.Entries) == 0 {
		fmt.Fprintf(o.out, "No games played by %s\n", h.Username)
		return
	}
	for _, e := range h.Entries {
		result := "Completed"
		if !e.Completed {
			result = "Abandoned"
		}
		fmt.Fprintf(o.out, "%s  %-9s  %s\n", e.Date.Local().Format("2006-01-02 15:04"), result, e.Elapsed)
	}
}
