package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/minisudoku-go/internal/api/response"
)

func newLeaderboardCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show best times across all players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Leaderboard

			if err := e.client.Get(cmd.Context(), "/api/v1/leaderboard", &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
}

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats USERNAME",
		Short: "Show a player's stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerStats

			path := fmt.Sprintf("/api/v1/players/%s/stats", url.PathEscape(args[0]))
			if err := e.client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
}

func newHistoryCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history USERNAME",
		Short: "Show a player's recent games, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.History

			path := fmt.Sprintf("/api/v1/players/%s/history", url.PathEscape(args[0]))
			if limit > 0 {
				path += fmt.Sprintf("?limit=%d", limit)
			}
			if err := e.client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of games to show (default: server setting)")

	return cmd
}
