package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/loan-tracker/backend/cmd/loanctl/output"
	"github.com/loan-tracker/backend/internal/client"
	"github.com/loan-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newLoansCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Create, update and delete loans",
	}

	cmd.AddCommand(
		newLoansCreateCmd(a),
		newLoansUpdateCmd(a),
		newLoansDeleteCmd(a),
	)

	return cmd
}

// loanFlags are the fields of a loan as given on the command line.
type loanFlags struct {
	friendName  string
	description string
	amount      string
	dueDate     string
	categoryID  uint
	statusID    uint
}

func (f *loanFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.friendName, "friend", "", "Name of the friend")
	flags.StringVar(&f.description, "description", "", "What was lent")
	flags.StringVar(&f.amount, "amount", "", "Amount of money, if any")
	flags.StringVar(&f.dueDate, "due-date", "", "Date the loan is due, as YYYY-MM-DD")
	flags.UintVar(&f.categoryID, "category", 0, "ID of the category")
	flags.UintVar(&f.statusID, "status", 0, "ID of the status")
}

func (f loanFlags) input() (client.LoanInput, error) {
	input := client.LoanInput{
		FriendName:  f.friendName,
		Description: f.description,
	}

	if f.categoryID != 0 {
		input.CategoryID = client.ID(f.categoryID)
	}
	if f.statusID != 0 {
		input.StatusID = client.ID(f.statusID)
	}

	if f.amount != "" {
		amount, err := decimal.NewFromString(f.amount)
		if err != nil {
			return client.LoanInput{}, fmt.Errorf("invalid amount %q: %w", f.amount, err)
		}
		input.Amount = decimal.NewNullDecimal(amount)
	}

	if f.dueDate != "" {
		date, err := types.ParseDate(f.dueDate)
		if err != nil {
			return client.LoanInput{}, fmt.Errorf("invalid due date %q: %w", f.dueDate, err)
		}
		input.DueDate = &date
	}

	return input, nil
}

func newLoansCreateCmd(a *app) *cobra.Command {
	var f loanFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a new loan",
		Long: `Record a new loan.

Examples:
  loanctl loans create --friend Ana --description "Dune" --category 2 --status 1
  loanctl loans create --friend Rui --description "Lunch" --amount 12.50 --due-date 2025-07-01 --category 1 --status 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := f.input()
			if err != nil {
				return err
			}

			_, s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			loan, err := s.CreateLoan(cmd.Context(), input)
			if err != nil {
				return err
			}

			output.Success(cmd.OutOrStdout(), "Created loan %s", loan.ID)
			return nil
		},
	}

	f.register(cmd.Flags())

	return cmd
}

func newLoansUpdateCmd(a *app) *cobra.Command {
	var f loanFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace the fields of a loan",
		Long: `Replace the fields of a loan. Fields that are not given are cleared,
the category and status included.

Examples:
  loanctl loans update 3f6c0a56-7c5e-4e9a-9a1d-6f0f5b1f4a11 --friend Ana --description "Dune" --category 2 --status 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid loan ID %q: %w", args[0], err)
			}

			input, err := f.input()
			if err != nil {
				return err
			}

			_, s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			loan, err := s.UpdateLoan(cmd.Context(), id, input)
			if err != nil {
				return err
			}

			output.Success(cmd.OutOrStdout(), "Updated loan %s", loan.ID)
			return nil
		},
	}

	f.register(cmd.Flags())

	return cmd
}

func newLoansDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid loan ID %q: %w", args[0], err)
			}

			_, s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			err = s.DeleteLoan(cmd.Context(), id)
			if err != nil {
				return err
			}

			output.Success(cmd.OutOrStdout(), "Deleted loan %s", id)
			return nil
		},
	}
}
