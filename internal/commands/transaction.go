package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"moneymanager/internal/app"
	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/form"
	"moneymanager/internal/models"
)

// editorFlags are the transaction fields settable from the command line.
type editorFlags struct {
	kind        string
	amount      string
	account     string
	to          string
	category    string
	division    string
	date        string
	description string
	recipient   string
}

func (f *editorFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.kind, "kind", "", "deposit, income, expense, transfer or send")
	flags.StringVar(&f.amount, "amount", "", "amount, for example 12.50")
	flags.StringVar(&f.account, "account", "", "account id or name")
	flags.StringVar(&f.to, "to", "", "transfer destination account id or name")
	flags.StringVar(&f.category, "category", "", "category")
	flags.StringVar(&f.division, "division", "", "Personal or Office")
	flags.StringVar(&f.date, "date", "", "effective date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
	flags.StringVar(&f.description, "description", "", "description")
	flags.StringVar(&f.recipient, "recipient", "", "recipient email of a send")
}

// apply feeds the flags that were given through the reducer. The kind goes
// first because switching kind resets the category.
func (f *editorFlags) apply(flags *pflag.FlagSet, s form.State) (form.State, error) {
	if flags.Changed("kind") {
		k := form.Kind(strings.ToLower(f.kind))
		if !k.Valid() {
			return s, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown kind %q", f.kind))
		}
		if !s.KindEnabled(k) {
			return s, apperrors.ErrKindDisabled
		}
		s = form.Reduce(s, form.SelectKind{Kind: k})
	}

	if flags.Changed("amount") && s.AmountLocked() {
		return s, apperrors.WithMessage(apperrors.ErrInvalidInput, "the amount of this transaction cannot be changed")
	}

	for _, acc := range []struct {
		flag   string
		action string
		value  string
	}{
		{"account", form.ActionSelectAccount, f.account},
		{"to", form.ActionSelectTransferTo, f.to},
	} {
		if !flags.Changed(acc.flag) {
			continue
		}
		if err := accountUsed(s, acc.flag); err != nil {
			return s, err
		}
		id, err := resolveAccount(s.Accounts, acc.value)
		if err != nil {
			return s, err
		}
		if acc.flag == "to" && id == s.Account {
			return s, apperrors.ErrSameAccountTransfer
		}
		if s, err = reduce(s, acc.action, id); err != nil {
			return s, err
		}
		if got := selectedAccount(s, acc.flag); got != id {
			return s, apperrors.WithMessage(apperrors.ErrInvalidInput,
				fmt.Sprintf("account %q cannot be selected for --%s", acc.value, acc.flag))
		}
	}

	for _, field := range []struct {
		flag   string
		action string
		value  string
	}{
		{"amount", form.ActionSetAmount, f.amount},
		{"category", form.ActionSetCategory, f.category},
		{"division", form.ActionSetDivision, f.division},
		{"date", form.ActionSetDate, f.date},
		{"description", form.ActionSetDescription, f.description},
		{"recipient", form.ActionSetRecipient, f.recipient},
	} {
		if !flags.Changed(field.flag) {
			continue
		}
		var err error
		if s, err = reduce(s, field.action, field.value); err != nil {
			return s, err
		}
		if field.flag == "category" && s.Category != field.value {
			return s, apperrors.WithMessage(apperrors.ErrInvalidInput,
				fmt.Sprintf("category %q is not available for %s", field.value, s.Kind.Label()))
		}
	}
	return s, nil
}

// accountUsed rejects account flags the current kind has no field for, so
// a given account is never silently dropped.
func accountUsed(s form.State, flag string) error {
	view := form.Describe(s)
	if flag == "account" && view.AccountRole == form.RoleNone {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("%s does not use an account", s.Kind.Label()))
	}
	if flag == "to" && s.Kind != form.KindTransfer {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "--to is only used by transfers")
	}
	return nil
}

func selectedAccount(s form.State, flag string) string {
	if flag == "to" {
		return s.TransferTo
	}
	return s.Account
}

func reduce(s form.State, name, value string) (form.State, error) {
	action, err := form.ParseAction(name, value)
	if err != nil {
		return s, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return form.Reduce(s, action), nil
}

// resolveAccount matches an account by id, then by case-insensitive name.
func resolveAccount(accounts []models.Account, value string) (string, error) {
	for _, acc := range accounts {
		if acc.ID == value {
			return acc.ID, nil
		}
	}
	for _, acc := range accounts {
		if strings.EqualFold(acc.Name, value) {
			return acc.ID, nil
		}
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown account %q", value))
}

func newAddCommand(open Opener) *cobra.Command {
	var f editorFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				state, err := a.Transactions.OpenForm(ctx, "")
				if err != nil {
					return err
				}
				return submit(ctx, cmd, a, f, *state, "Added")
			})
		},
	}

	f.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newEditCommand(open Opener) *cobra.Command {
	var f editorFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a transaction recorded within the edit window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				state, err := a.Transactions.OpenForm(ctx, args[0])
				if err != nil {
					return err
				}
				return submit(ctx, cmd, a, f, *state, "Updated")
			})
		},
	}

	f.register(cmd.Flags())

	return cmd
}

func submit(ctx context.Context, cmd *cobra.Command, a *app.App, f editorFlags, state form.State, verb string) error {
	state, err := f.apply(cmd.Flags(), state)
	if err != nil {
		return err
	}
	tx, err := a.Transactions.Submit(ctx, state, origin(ctx))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s (%s)\n", verb, tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.ID)
	return nil
}

func newDeleteCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction recorded within the edit window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app.App) error {
				if err := a.Transactions.Delete(ctx, args[0], origin(ctx)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}
