package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"moneymanager/internal/app"
	"moneymanager/internal/models"
)

func newAccountsCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				accounts, err := a.Accounts.List(ctx)
				if err != nil {
					return err
				}
				printAccounts(cmd.OutOrStdout(), accounts, models.TotalBalance(accounts))
				return nil
			})
		},
	}
}

func printAccounts(out io.Writer, accounts []models.Account, total decimal.Decimal) {
	if len(accounts) == 0 {
		fmt.Fprintln(out, "No accounts")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tBALANCE")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.Type, acc.Balance.StringFixed(2))
	}
	fmt.Fprintf(w, "\t\tTotal\t%s\n", total.StringFixed(2))
	_ = w.Flush()
}
