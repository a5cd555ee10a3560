package account

import (
	"context"
	"fmt"

	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type RemoveCommandRunner struct {
	app       *app.App
	accountID int64
}

func NewRemoveCmd(getApp app.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <account-id>",
		Short: "Remove an account",
		Long:  `Remove an account and all its transactions. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var accountID int64
			if _, err := fmt.Sscanf(args[0], "%d", &accountID); err != nil {
				return fmt.Errorf("invalid account ID: %s", args[0])
			}

			a, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			runner := &RemoveCommandRunner{app: a, accountID: accountID}
			return runner.Run(cmd.Context())
		},
	}

	return cmd
}

func (r *RemoveCommandRunner) Run(ctx context.Context) error {
	page := r.app.Page
	page.Render(ctx, &pages.Params{AccountID: r.accountID})
	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	rows := r.app.Region.Rows()
	pterm.Warning.Printf("About to delete account '%s' with %d transactions\n", r.app.Region.Title(), len(rows))
	pterm.Warning.Println("This action cannot be undone!")

	r.app.Region.RemoveAccountControl().Click()
	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if page.LastOptions() != nil {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	views.RenderDeleted("Account")
	return nil
}
