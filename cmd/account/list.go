package account

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/hance08/bills/internal/api"
	"github.com/hance08/bills/internal/app"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	UserID int64
}

type ListCommandRunner struct {
	app   *app.App
	flags *listFlags
	out   io.Writer
}

func NewListCmd(getApp app.Provider) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Long: `List the accounts kept by the backend.
You can restrict the list to the accounts of one user.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			runner := &ListCommandRunner{
				app:   a,
				flags: flags,
				out:   cmd.OutOrStdout(),
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().Int64VarP(&flags.UserID, "user", "u", 0, "Only list the accounts of this user")

	return cmd
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	var filter transport.Params
	if r.flags.UserID != 0 {
		filter = transport.P("user_id", strconv.FormatInt(r.flags.UserID, 10))
	}

	var (
		mu       sync.Mutex
		accounts []model.Account
	)
	r.app.Client.Accounts.List(ctx, filter, func(err error, resp *api.Envelope[[]model.Account]) {
		if err := api.Check(err, resp); err != nil {
			r.app.Failures.Report("load accounts", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		accounts = resp.Data
	})

	if err := r.app.Wait(); err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return views.NewAccountListView(r.out).Render(accounts)
}
