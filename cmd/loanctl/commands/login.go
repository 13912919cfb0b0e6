package commands

import (
	"fmt"

	"github.com/loan-tracker/backend/cmd/loanctl/output"
	"github.com/loan-tracker/backend/internal/session"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var redirectTo string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Print the URL to sign in with Google",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth, err := a.auth()
			if err != nil {
				return err
			}

			output.Title(cmd.OutOrStdout(), "Open this URL to sign in:")
			fmt.Fprintf(cmd.OutOrStdout(), "\n  %s\n", auth.SignInURL(redirectTo))
			return nil
		},
	}

	cmd.Flags().StringVar(&redirectTo, "redirect-to", "http://localhost:5173"+session.DashboardPath, "URL to return to after signing in")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session of the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth, err := a.auth()
			if err != nil {
				return err
			}

			err = auth.SignOut(cmd.Context())
			if err != nil {
				return err
			}

			output.Success(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
