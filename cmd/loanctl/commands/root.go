// Package commands implements the loanctl commands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/loan-tracker/backend/internal/client"
	"github.com/loan-tracker/backend/internal/session"
	"github.com/loan-tracker/backend/internal/session/supabase"
	"github.com/loan-tracker/backend/internal/store"
	"github.com/spf13/cobra"
)

var (
	errAPIURLRequired  = errors.New("the API URL is required, set it with --api or API_BASE_URL")
	errAuthURLRequired = errors.New("the auth URL is required, set it with --auth-url or SUPABASE_URL")
	errNotSignedIn     = errors.New("you are not signed in, run loanctl login")
)

// app holds the global flags shared by all commands.
type app struct {
	apiURL  string
	token   string
	authURL string
	apiKey  string
}

// NewRootCmd returns the loanctl command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "loanctl",
		Short: "Keep track of what you lent to your friends",
		Long: `loanctl manages the loans stored by the loan tracker API.

Sign in with "loanctl login", then pass the access token with --token
or LOANCTL_ACCESS_TOKEN.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.apiURL, "api", os.Getenv("API_BASE_URL"), "Base URL of the loan tracker API")
	flags.StringVar(&a.token, "token", os.Getenv("LOANCTL_ACCESS_TOKEN"), "Access token of your session")
	flags.StringVar(&a.authURL, "auth-url", os.Getenv("SUPABASE_URL"), "URL of the Supabase project")
	flags.StringVar(&a.apiKey, "api-key", os.Getenv("SUPABASE_ANON_KEY"), "Anonymous key of the Supabase project")

	cmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newDashboardCmd(a),
		newLoansCmd(a),
	)

	return cmd
}

// Execute runs the root command. An interrupt cancels the requests
// of the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) auth() (*session.Auth, error) {
	if a.authURL == "" {
		return nil, errAuthURLRequired
	}

	return session.NewAuth(supabase.New(a.authURL, a.apiKey, supabase.WithAccessToken(a.token))), nil
}

func (a *app) store() (*store.Store, error) {
	if a.apiURL == "" {
		return nil, errAPIURLRequired
	}

	return store.New(client.New(a.apiURL, client.WithToken(a.token))), nil
}

// open navigates to the dashboard and returns the session and the store
// if the navigation proceeds.
func (a *app) open(ctx context.Context) (*session.Auth, *store.Store, error) {
	auth, err := a.auth()
	if err != nil {
		return nil, nil, err
	}

	s, err := a.store()
	if err != nil {
		return nil, nil, err
	}

	if !auth.Navigate(ctx, session.DashboardPath).Proceeds() {
		return nil, nil, errNotSignedIn
	}

	return auth, s, nil
}
