package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/minisudoku-go/internal/api/response"
)

func newHealthCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health

			if err := e.client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
}
