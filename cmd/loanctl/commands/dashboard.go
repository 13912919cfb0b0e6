package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/loan-tracker/backend/cmd/loanctl/output"
	"github.com/loan-tracker/backend/internal/client"
	"github.com/loan-tracker/backend/internal/store"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the summary and the list of loans",
		Long: `Show how many loans are pending and returned, the amount that is
still outstanding and the list of loans, newest first.

Examples:
  loanctl dashboard                    # All loans
  loanctl dashboard --filter pending   # Only loans that were not returned yet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := store.ParseFilter(filter)
			if err != nil {
				return err
			}

			auth, s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			s.LoadMeta(cmd.Context())
			if msg := s.Error(); msg != "" {
				return errors.New(msg)
			}

			s.LoadLoans(cmd.Context())
			if msg := s.Error(); msg != "" {
				return errors.New(msg)
			}

			s.SetFilter(f)

			out := cmd.OutOrStdout()
			if u := auth.User(); u != nil {
				output.Muted(out, "Signed in as %s <%s>", u.Name, u.Email)
			}
			output.Title(out, "Pending: %d  Returned: %d  Outstanding: %s", s.CountPending(), s.CountReturned(), s.TotalPendingAmount().StringFixed(2))
			fmt.Fprintln(out)

			return printLoans(out, s)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(store.FilterAll), "Loans to list: all, pending or returned")

	return cmd
}

// printLoans writes the filtered loans of s as a table.
func printLoans(out io.Writer, s *store.Store) error {
	loans := s.FilteredLoans()
	if len(loans) == 0 {
		output.Muted(out, "No loans.")
		return nil
	}

	categories := make(map[uint]string)
	for _, c := range s.Categories() {
		categories[c.ID] = c.Name
	}

	statuses := make(map[uint]string)
	for _, st := range s.Statuses() {
		statuses[st.ID] = st.Name
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFRIEND\tDESCRIPTION\tAMOUNT\tDUE\tCATEGORY\tSTATUS")
	for _, l := range loans {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.FriendName, l.Description, amount(l), dueDate(l),
			name(categories, l.CategoryID), name(statuses, l.StatusID))
	}

	return w.Flush()
}

func amount(l client.Loan) string {
	if !l.Amount.Valid {
		return "-"
	}
	return l.Amount.Decimal.StringFixed(2)
}

func dueDate(l client.Loan) string {
	if l.DueDate == nil || l.DueDate.IsZero() {
		return "-"
	}
	return l.DueDate.String()
}

func name(names map[uint]string, id *uint) string {
	if id == nil {
		return "-"
	}
	return names[*id]
}
