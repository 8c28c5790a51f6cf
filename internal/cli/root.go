package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// env is the state shared by all commands of one invocation
type env struct {
	cfg    *Config
	client *Client
}

// output returns a formatter writing to the command's stdout
func (e *env) output(cmd *cobra.Command) *Output {
	return NewOutput(e.cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	e := &env{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "minisudoku",
		Short: "CLI tool for the mini sudoku API",
		Long: `minisudoku plays 3x3 mini sudoku against a minisudoku server.

The server keeps one logged-in player at a time. Log in, fill cells with
"set ROW COL VALUE", then "check" your solution.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e.client = NewClient(e.cfg.ServerURL)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&e.cfg.ServerURL, "server", e.cfg.ServerURL, "Server URL (env: MINISUDOKU_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&e.cfg.Output, "output", "o", e.cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newRegisterCmd(e))
	rootCmd.AddCommand(newLoginCmd(e))
	rootCmd.AddCommand(newLogoutCmd(e))
	rootCmd.AddCommand(newShowCmd(e))
	rootCmd.AddCommand(newSetCmd(e))
	rootCmd.AddCommand(newCheckCmd(e))
	rootCmd.AddCommand(newResetCmd(e))
	rootCmd.AddCommand(newSaveCmd(e))
	rootCmd.AddCommand(newLeaderboardCmd(e))
	rootCmd.AddCommand(newStatsCmd(e))
	rootCmd.AddCommand(newHistoryCmd(e))
	rootCmd.AddCommand(newHealthCmd(e))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		NewOutput(outputFlag(cmd), os.Stdout, os.Stderr).PrintError(err)
		os.Exit(1)
	}
}

func outputFlag(cmd *cobra.Command) string {
	v, err := cmd.PersistentFlags().GetString("output")
	if err != nil {
		return "text"
	}
	return v
}
