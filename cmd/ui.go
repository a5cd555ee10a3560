package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/constants"
	"github.com/hance08/bills/internal/ui"
	"github.com/hance08/bills/internal/ui/forms"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/internal/ui/prompts"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	actionRefresh       = "refresh"
	actionIncome        = "income"
	actionExpense       = "expense"
	actionRemoveTx      = "remove-transaction"
	actionRemoveAccount = "remove-account"
	actionSwitch        = "switch"
	actionQuit          = "quit"
)

type uiRunner struct {
	app *app.App
	out io.Writer
}

func NewUICmd(getApp app.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse and edit the transactions of an account interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			runner := &uiRunner{app: a, out: cmd.OutOrStdout()}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *uiRunner) Run(ctx context.Context) error {
	if err := r.chooseAccount(ctx); err != nil {
		return err
	}

	for {
		if err := r.show(); err != nil {
			return err
		}

		action, err := prompts.PromptSelect(ctx, "What next?", []huh.Option[string]{
			huh.NewOption("Refresh", actionRefresh),
			huh.NewOption("Add income", actionIncome),
			huh.NewOption("Add expense", actionExpense),
			huh.NewOption("Delete transaction", actionRemoveTx),
			huh.NewOption("Delete account", actionRemoveAccount),
			huh.NewOption("Switch account", actionSwitch),
			huh.NewOption("Quit", actionQuit),
		}, actionRefresh)
		if err != nil {
			return err
		}

		switch action {
		case actionRefresh:
			r.app.Refresh()
		case actionIncome, actionExpense:
			err = r.add(ctx, action)
		case actionRemoveTx:
			err = r.removeTransaction(ctx)
		case actionRemoveAccount:
			r.app.Region.RemoveAccountControl().Click()
		case actionSwitch:
			err = r.chooseAccount(ctx)
		case actionQuit:
			return nil
		}
		if err != nil {
			return err
		}

		if err := r.app.Wait(); err != nil {
			pterm.Error.Println(err)
		}

		if r.app.Page.LastOptions() == nil {
			pterm.Info.Println("The account was removed")
			if err := r.chooseAccount(ctx); err != nil {
				return err
			}
		}
	}
}

func (r *uiRunner) show() error {
	ui.Separator()
	return views.NewTransactionListView(r.out).RenderFormat(r.app.Region, r.app.Config.UI.Format)
}

func (r *uiRunner) chooseAccount(ctx context.Context) error {
	form, err := r.app.Form(forms.KindExpense)
	if err != nil {
		return err
	}

	form.RenderAccountsList(ctx, nil)
	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts := form.AccountOptions()
	if len(accounts) == 0 {
		return fmt.Errorf("no accounts yet, create one with `bills account create`")
	}

	accountID, err := prompts.PromptAccountSelection(ctx, accounts, "Choose the account:")
	if err != nil {
		return err
	}

	r.app.Page.Render(ctx, &pages.Params{AccountID: accountID})
	return r.app.Wait()
}

func (r *uiRunner) add(ctx context.Context, kind string) error {
	params := r.app.Page.LastOptions()
	if params == nil {
		return nil
	}

	form, err := r.app.Form(kind)
	if err != nil {
		return err
	}

	name, sum, err := prompts.PromptTransactionDetails(ctx, "", "")
	if err != nil {
		return err
	}

	form.Set("name", name)
	form.Set("sum", sum)
	form.Set("account_id", strconv.FormatInt(params.AccountID, 10))
	if err := form.Submit(ctx); err != nil {
		pterm.Error.Println(err)
		form.Reset()
	}
	return nil
}

func (r *uiRunner) removeTransaction(ctx context.Context) error {
	rows := r.app.Region.Rows()
	if len(rows) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	options := make([]huh.Option[string], 0, len(rows))
	for _, el := range rows {
		label := fmt.Sprintf("#%s %s, %s %s (%s)", el.Row.ID, el.Row.Name, el.Row.Sum, constants.CurrencySign, el.Row.Date)
		options = append(options, huh.NewOption(label, el.Row.ID))
	}

	id, err := prompts.PromptSelect(ctx, "Choose the transaction to delete:", options, rows[0].Row.ID)
	if err != nil {
		return err
	}

	if control, ok := r.app.Region.RemoveControl(id); ok {
		control.Click()
	}
	return nil
}
