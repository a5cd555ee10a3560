package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hance08/bills/internal/api"
	"github.com/hance08/bills/internal/config"
	"github.com/hance08/bills/internal/errhandler"
	"github.com/hance08/bills/internal/transport"
	"github.com/hance08/bills/internal/ui/forms"
	"github.com/hance08/bills/internal/ui/pages"
	"github.com/hance08/bills/internal/ui/prompts"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/pterm/pterm"
)

// App wires the client side: transport, API client, the transactions page
// and the create forms.
type App struct {
	Config    *config.Config
	Logger    *pterm.Logger
	Transport *transport.HTTPTransport
	Client    *api.Client
	Region    *views.TransactionsRegion
	Page      *pages.TransactionsPage
	Forms     map[string]*forms.Form
	Failures  *errhandler.Tracker

	ctx context.Context
}

// Provider returns the application, building it on first use.
type Provider func(ctx context.Context) (*App, error)

// NewApp initialize the client components from cfg. Failure notifications
// are written to out when failures.policy is notify.
func NewApp(ctx context.Context, cfg *config.Config, logger *pterm.Logger, out io.Writer) (*App, error) {
	reporter, err := errhandler.NewReporter(cfg.Failures.Policy, logger, out)
	if err != nil {
		return nil, err
	}
	failures := errhandler.NewTracker(reporter)

	confirm, err := prompts.NewConfirmer(cfg.UI.Prompt)
	if err != nil {
		return nil, err
	}

	tr := transport.NewHTTPTransport(transport.WithLogger(logger))
	client := api.NewClient(tr, cfg.Server.BaseURL)

	a := &App{
		Config:    cfg,
		Logger:    logger,
		Transport: tr,
		Client:    client,
		Region:    views.NewTransactionsRegion(),
		Forms:     make(map[string]*forms.Form),
		Failures:  failures,
		ctx:       ctx,
	}

	a.Page, err = pages.NewTransactionsPage(a.Region, pages.Deps{
		Accounts:     client.Accounts,
		Transactions: client.Transactions,
		Confirm:      confirm,
		Refresh:      a,
		Failures:     failures,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transactions page: %w", err)
	}

	for _, kind := range []string{forms.KindIncome, forms.KindExpense, forms.KindAccount} {
		handler, err := forms.NewSubmitHandler(kind, client)
		if err != nil {
			return nil, err
		}

		deps := forms.Deps{
			Handler:  handler,
			Refresh:  a,
			Failures: failures,
		}
		if kind != forms.KindAccount {
			deps.Accounts = client.Accounts
		}

		form, err := forms.New(kind, deps)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s form: %w", kind, err)
		}
		a.Forms[kind] = form
	}

	return a, nil
}

// Refresh brings every widget back in sync with the backend: the
// transactions page and the account options of the forms.
func (a *App) Refresh() {
	a.Page.Update(a.ctx)
	for _, form := range a.Forms {
		form.RenderAccountsList(a.ctx, nil)
	}
}

// Wait blocks until every request issued so far has been answered, including
// the ones issued by their callbacks, and returns the first failure reported
// meanwhile.
func (a *App) Wait() error {
	a.Transport.Wait()
	err := a.Failures.Err()
	a.Failures.Reset()
	return err
}

// Form returns the form registered for kind.
func (a *App) Form(kind string) (*forms.Form, error) {
	form, ok := a.Forms[kind]
	if !ok {
		return nil, fmt.Errorf("unknown form kind %q", kind)
	}
	return form, nil
}

// DataDir is where the config file and the default database live.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bills"), nil
	}

	return filepath.Join(configDir, "bills"), nil
}
