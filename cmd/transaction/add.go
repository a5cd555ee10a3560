package transaction

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/ui"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/internal/ui/prompts"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/hance08/bills/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Type      string
	Name      string
	Sum       string
	AccountID int64
}

type addRunner struct {
	app   *app.App
	flags *addFlags
	out   io.Writer
}

func NewAddCmd(getApp app.Provider) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Add an income or expense transaction to an account.

	You can use flags for quick entry or interactive mode for guided input.

	Examples:
	# Interactive mode
	bills transaction add

	# Quick mode with flags
	bills transaction add --type expense --name "Coffee" --sum 150 --account 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			runner := &addRunner{app: a, flags: flags, out: cmd.OutOrStdout()}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: income or expense")
	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Transaction name")
	cmd.Flags().StringVarP(&flags.Sum, "sum", "s", "", "Transaction sum (e.g., 150 or 150.50)")
	cmd.Flags().Int64VarP(&flags.AccountID, "account", "a", 0, "Account ID")

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	interactive := r.flags.Type == "" || r.flags.Name == "" || r.flags.Sum == "" || r.flags.AccountID == 0
	if interactive {
		ui.PrintL1Title("Add New Transaction")
	}

	txType := r.flags.Type
	if txType == "" {
		var err error
		txType, err = prompts.PromptTransactionType(ctx, "")
		if err != nil {
			return err
		}
	}
	if err := validation.ValidateType(txType); err != nil {
		return err
	}

	form, err := r.app.Form(txType)
	if err != nil {
		return err
	}

	accountID := r.flags.AccountID
	if accountID == 0 {
		form.RenderAccountsList(ctx, nil)
		if err := r.app.Wait(); err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}

		accountID, err = prompts.PromptAccountSelection(ctx, form.AccountOptions(), "Choose the account:")
		if err != nil {
			return err
		}
	}

	name, sum, err := prompts.PromptTransactionDetails(ctx, r.flags.Name, r.flags.Sum)
	if err != nil {
		return err
	}

	// the page is refreshed after a successful submission
	r.app.Page.Render(ctx, &pages.Params{AccountID: accountID})
	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	form.Set("name", name)
	form.Set("sum", sum)
	form.Set("account_id", strconv.FormatInt(accountID, 10))
	if err := form.Submit(ctx); err != nil {
		return err
	}

	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	pterm.Success.Println("Transaction created successfully!")
	return views.NewTransactionListView(r.out).RenderFormat(r.app.Region, r.app.Config.UI.Format)
}
