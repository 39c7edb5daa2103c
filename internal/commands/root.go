// Package commands implements the moneyctl command line.
package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"moneymanager/internal/app"
	"moneymanager/internal/client"
	"moneymanager/internal/logger"
	"moneymanager/internal/services"
	"moneymanager/internal/uuid"
)

// Opener returns the wired services. Commands close what it opens.
type Opener func() (*app.App, error)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(open Opener) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "moneyctl",
		Short: "Track income, expenses and transfers from the terminal",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.Init(os.Getenv("ENV"))
				return
			}
			logger.UseNop()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write logs to stderr")

	rootCmd.AddCommand(
		newLoginCommand(open),
		newRegisterCommand(open),
		newLogoutCommand(open),
		newWhoamiCommand(open),
		newAccountsCommand(open),
		newSummaryCommand(open),
		newAddCommand(open),
		newEditCommand(open),
		newDeleteCommand(open),
	)

	return rootCmd
}

// withApp opens the services, runs fn and closes them again.
func withApp(cmd *cobra.Command, open Opener, fn func(ctx context.Context, a *app.App) error) error {
	a, err := open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			logger.Get().Warnf("failed to close database: %v", cerr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(client.WithRequestID(ctx, uuid.NewRequestID()), a)
}

// origin attributes CLI mutations in the audit trail.
func origin(ctx context.Context) services.Origin {
	return services.Origin{IPAddress: "cli", RequestID: client.RequestID(ctx)}
}
