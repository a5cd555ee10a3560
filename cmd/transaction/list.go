package transaction

import (
	"context"
	"fmt"
	"io"

	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	AccountID int64
	Format    string
}

type listRunner struct {
	app   *app.App
	flags *listFlags
	out   io.Writer
}

func NewListCmd(getApp app.Provider) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the transactions of an account",
		Long: `List the transactions of an account, newest first.

	Examples:
	bills transaction list --account 1
	bills transaction list --account 1 --format html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			if flags.Format == "" {
				flags.Format = a.Config.UI.Format
			}
			runner := &listRunner{app: a, flags: flags, out: cmd.OutOrStdout()}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().Int64VarP(&flags.AccountID, "account", "a", 0, "Account ID")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format: table or html (default from ui.format)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	if r.flags.Format != "table" && r.flags.Format != "html" {
		return fmt.Errorf("invalid format '%s' (must be table or html)", r.flags.Format)
	}

	r.app.Page.Render(ctx, &pages.Params{AccountID: r.flags.AccountID})
	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	return views.NewTransactionListView(r.out).RenderFormat(r.app.Region, r.flags.Format)
}
