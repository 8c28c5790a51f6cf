package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/minisudoku-go/internal/api/response"
)

func credentialsFlags(cmd *cobra.Command, user, pass *string) {
	cmd.Flags().StringVarP(user, "user", "u", "", "Username (required)")
	cmd.Flags().StringVarP(pass, "pass", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")
}

func newRegisterCmd(e *env) *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"username": user, "password": pass}
			var result response.Message

			if err := e.client.Post(cmd.Context(), "/api/v1/accounts", req, &result); err != nil {
				return err
			}

			e.output(cmd).PrintMessage(result.Message)
			return nil
		},
	}
	credentialsFlags(cmd, &user, &pass)

	return cmd
}

func newLoginCmd(e *env) *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and start or resume a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"username": user, "password": pass}
			var result response.Session

			if err := e.client.Post(cmd.Context(), "/api/v1/session/login", req, &result); err != nil {
				return err
			}

			e.output(cmd).Print(result)
			return nil
		},
	}
	credentialsFlags(cmd, &user, &pass)

	return cmd
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Save progress and log out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.client.Post(cmd.Context(), "/api/v1/session/logout", nil, nil); err != nil {
				return err
			}

			e.output(cmd).PrintMessage("Logged out, progress saved")
			return nil
		},
	}
}
