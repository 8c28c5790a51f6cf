package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/minisudoku-go/internal/api/response"
)

func newShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current board and timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := e.client.Get(cmd.Context(), "/api/v1/session", &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
}

func newSetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "set ROW COL VALUE",
		Short: "Write a value (1-3) into a cell, or 0 to clear it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"row", "col", "value"}
			req := make(map[string]int, len(args))
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("%s must be a number, got %q", names[i], arg)
				}
				req[names[i]] = n
			}

			var result response.Session
			if err := e.client.Put(cmd.Context(), "/api/v1/session/cells", req, &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
}

func newCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether the board is solved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.CheckResult

			if err := e.client.Post(cmd.Context(), "/api/v1/session/check", nil, &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
}

func newResetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a fresh puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := e.client.Post(cmd.Context(), "/api/v1/session/reset", nil, &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
}

func newSaveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save progress without logging out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Message

			if err := e.client.Post(cmd.Context(), "/api/v1/session/save", nil, &result); err != nil {
				return err
			}

			e.output(cmd).PrintMessage(result.Message)
			return nil
		},
	}
}
