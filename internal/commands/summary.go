package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"moneymanager/internal/aggregator"
	"moneymanager/internal/app"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/period"
	"moneymanager/internal/services"
)

func newSummaryCommand(open Opener) *cobra.Command {
	var (
		rangeName string
		from, to  string
		division  string
		category  string
		page      int
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, the outflow breakdown and transactions for a time range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := services.DashboardQuery{
				Range:     period.Preset(rangeName),
				StartDate: from,
				EndDate:   to,
				Filter: aggregator.Filter{
					Division: models.Division(division),
					Category: category,
				},
				Page: pagination.PageRequest{Page: page, PageSize: pageSize},
			}
			if (from != "" || to != "") && !cmd.Flags().Changed("range") {
				q.Range = period.Custom
			}

			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				d, err := a.Dashboard.Load(ctx, q)
				if err != nil {
					return err
				}
				printDashboard(cmd.OutOrStdout(), d)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rangeName, "range", string(period.All), "time range: all, week, month, year or custom")
	cmd.Flags().StringVar(&from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "custom range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&division, "division", "", "only Personal or Office transactions")
	cmd.Flags().StringVar(&category, "category", "", "only transactions of this category")
	cmd.Flags().IntVar(&page, "page", 1, "page of the transaction list")
	cmd.Flags().IntVar(&pageSize, "page-size", pagination.DefaultPageSize, "transactions per page")

	return cmd
}

func printDashboard(out io.Writer, d *services.Dashboard) {
	printAccounts(out, d.Accounts, d.TotalBalance)

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Income\t%s\n", d.Summary.Income.StringFixed(2))
	fmt.Fprintf(w, "Expense\t%s\n", d.Summary.Expense.StringFixed(2))
	fmt.Fprintf(w, "Balance\t%s\n", d.Summary.Balance.StringFixed(2))
	_ = w.Flush()

	if len(d.Breakdown) > 0 {
		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tOUTFLOW")
		for _, c := range d.Breakdown {
			fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Value.StringFixed(2))
		}
		_ = w.Flush()
	}

	fmt.Fprintln(out)
	if len(d.Transactions.Data) == 0 {
		fmt.Fprintln(out, "No transactions")
		return
	}
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tCATEGORY\tDIVISION\tDESCRIPTION")
	for _, tx := range d.Transactions.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Date.Format("2006-01-02"), tx.Type, tx.Amount.StringFixed(2),
			tx.Category, tx.Division, tx.Description)
	}
	_ = w.Flush()
	fmt.Fprintf(out, "Page %d of %d (%d transactions)\n",
		d.Transactions.Page, d.Transactions.TotalPages, d.Transactions.TotalItems)
}
