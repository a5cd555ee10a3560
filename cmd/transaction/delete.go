package transaction

import (
	"context"
	"fmt"

	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	AccountID int64
}

type deleteRunner struct {
	app   *app.App
	flags *deleteFlags
	txID  string
}

func NewDeleteCmd(getApp app.Provider) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction of an account. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var txID int64
			if _, err := fmt.Sscanf(args[0], "%d", &txID); err != nil {
				return fmt.Errorf("invalid transaction ID: %s", args[0])
			}

			a, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			runner := &deleteRunner{app: a, flags: flags, txID: fmt.Sprint(txID)}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().Int64VarP(&flags.AccountID, "account", "a", 0, "Account the transaction belongs to")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func (r *deleteRunner) Run(ctx context.Context) error {
	r.app.Page.Render(ctx, &pages.Params{AccountID: r.flags.AccountID})
	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	control, ok := r.app.Region.RemoveControl(r.txID)
	if !ok {
		return fmt.Errorf("transaction #%s not found in account '%s'", r.txID, r.app.Region.Title())
	}

	for _, el := range r.app.Region.Rows() {
		if el.Row.ID == r.txID {
			views.RenderTransactionDeletePreview(el.Row)
			break
		}
	}

	control.Click()
	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	// a successful removal refreshes the page, which drops the row
	if _, still := r.app.Region.RemoveControl(r.txID); still {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	views.RenderDeleted(fmt.Sprintf("Transaction #%s", r.txID))
	return nil
}
