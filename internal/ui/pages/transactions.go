// Package pages holds the controllers that own a page region and keep it in
// sync with the backend.
package pages

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/hance08/bills/internal/api"
	"github.com/hance08/bills/internal/constants"
	"github.com/hance08/bills/internal/errhandler"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
	"github.com/hance08/bills/internal/ui/prompts"
	"github.com/hance08/bills/internal/ui/views"
	"github.com/pterm/pterm"
)

// Params identifies what the page shows.
type Params struct {
	AccountID int64
}

// Refresher resynchronizes the rest of the application after a change.
type Refresher interface {
	Refresh()
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func()

func (f RefreshFunc) Refresh() { f() }

type Deps struct {
	Accounts     api.AccountAPI
	Transactions api.TransactionAPI
	Confirm      prompts.Confirmer
	Refresh      Refresher
	Failures     errhandler.Reporter
	Logger       *pterm.Logger
}

// TransactionsPage shows the transactions of one account. It is Empty until
// Render is called and returns to Empty after Clear.
type TransactionsPage struct {
	region       *views.TransactionsRegion
	accounts     api.AccountAPI
	transactions api.TransactionAPI
	confirm      prompts.Confirmer
	refresh      Refresher
	failures     errhandler.Reporter
	logger       *pterm.Logger

	mu          sync.Mutex
	lastOptions *Params
	// generation is bumped by every Clear. Fetch callbacks carry the value
	// current at issue time and are dropped when it has moved on.
	generation uint64
}

func NewTransactionsPage(region *views.TransactionsRegion, deps Deps) (*TransactionsPage, error) {
	if region == nil {
		return nil, errors.New("region is not defined")
	}
	if deps.Accounts == nil || deps.Transactions == nil {
		return nil, errors.New("account and transaction APIs are required")
	}
	if deps.Confirm == nil {
		return nil, errors.New("confirmation is required")
	}
	if deps.Refresh == nil {
		deps.Refresh = RefreshFunc(func() {})
	}
	if deps.Failures == nil {
		deps.Failures = errhandler.Silent{}
	}
	if deps.Logger == nil {
		deps.Logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	p := &TransactionsPage{
		region:       region,
		accounts:     deps.Accounts,
		transactions: deps.Transactions,
		confirm:      deps.Confirm,
		refresh:      deps.Refresh,
		failures:     deps.Failures,
		logger:       deps.Logger,
	}
	p.registerEvents()
	p.Clear()
	return p, nil
}

func (p *TransactionsPage) Region() *views.TransactionsRegion {
	return p.region
}

// LastOptions returns a copy of the current params, nil when Empty.
func (p *TransactionsPage) LastOptions() *Params {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastOptions == nil {
		return nil
	}
	params := *p.lastOptions
	return &params
}

func (p *TransactionsPage) registerEvents() {
	p.region.RemoveAccountControl().Bind(func(string) {
		if err := p.RemoveAccount(context.Background()); err != nil {
			p.failures.Report("remove account", err)
		}
	})
}

func (p *TransactionsPage) bindRemoveControls() {
	for _, control := range p.region.RemoveControls() {
		control.Bind(func(id string) {
			if err := p.RemoveTransaction(context.Background(), id); err != nil {
				p.failures.Report("remove transaction", err)
			}
		})
	}
}

// Update renders the current params again. It does nothing when Empty.
func (p *TransactionsPage) Update(ctx context.Context) {
	if params := p.LastOptions(); params != nil {
		p.Render(ctx, params)
	}
}

// Render clears the page and fetches the account title and transaction list
// for params. The two fetches complete independently.
func (p *TransactionsPage) Render(ctx context.Context, params *Params) {
	if params == nil {
		return
	}

	p.mu.Lock()
	p.clearLocked()
	current := *params
	p.lastOptions = &current
	gen := p.generation
	p.mu.Unlock()

	p.logger.Debug("rendering transactions page", p.logger.Args("account_id", current.AccountID, "generation", gen))

	p.accounts.Get(ctx, current.AccountID, func(err error, resp *api.Envelope[model.Account]) {
		err = api.Check(err, resp)

		p.mu.Lock()
		if !p.currentLocked(gen) {
			p.mu.Unlock()
			return
		}
		if err == nil {
			p.region.SetTitle(resp.Data.Name)
		}
		p.mu.Unlock()

		if err != nil {
			p.failures.Report("load account", err)
		}
	})

	filter := transport.P("account_id", strconv.FormatInt(current.AccountID, 10))
	p.transactions.List(ctx, filter, func(err error, resp *api.Envelope[[]model.Transaction]) {
		err = api.Check(err, resp)

		p.mu.Lock()
		if !p.currentLocked(gen) {
			p.mu.Unlock()
			return
		}
		if err == nil {
			p.renderTransactions(resp.Data)
		}
		p.mu.Unlock()

		if err != nil {
			p.failures.Report("load transactions", err)
		}
	})
}

func (p *TransactionsPage) currentLocked(gen uint64) bool {
	if gen != p.generation {
		p.logger.Debug("dropping stale response", p.logger.Args("generation", gen, "current", p.generation))
		return false
	}
	return true
}

// RemoveAccount asks for confirmation and deletes the current account. On
// success the page is cleared, unless it has moved on to another account
// meanwhile, and the application refreshed. The returned error only reports
// a failed confirmation prompt.
func (p *TransactionsPage) RemoveAccount(ctx context.Context) error {
	params := p.LastOptions()
	if params == nil {
		return nil
	}

	ok, err := p.confirm.Confirm(ctx, constants.ConfirmRemoveAccount)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	p.mu.Lock()
	gen := p.generation
	p.mu.Unlock()

	removed := params.AccountID
	filter := transport.P("id", strconv.FormatInt(removed, 10))
	p.accounts.Remove(ctx, filter, func(err error, resp *api.Envelope[api.Empty]) {
		if err := api.Check(err, resp); err != nil {
			p.failures.Report("remove account", err)
			return
		}

		// the page may show another account by now; only clear what was removed
		p.mu.Lock()
		if gen == p.generation || (p.lastOptions != nil && p.lastOptions.AccountID == removed) {
			p.clearLocked()
		}
		p.mu.Unlock()

		p.refresh.Refresh()
	})
	return nil
}

// RemoveTransaction asks for confirmation and deletes transaction id. On
// success the application is refreshed.
func (p *TransactionsPage) RemoveTransaction(ctx context.Context, id string) error {
	ok, err := p.confirm.Confirm(ctx, constants.ConfirmRemoveTransaction)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	p.transactions.Remove(ctx, transport.P("id", id), func(err error, resp *api.Envelope[api.Empty]) {
		if err := api.Check(err, resp); err != nil {
			p.failures.Report("remove transaction", err)
			return
		}
		p.refresh.Refresh()
	})
	return nil
}

// Clear empties the list, resets the title and forgets the current params.
// Responses still in flight are discarded.
func (p *TransactionsPage) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearLocked()
}

func (p *TransactionsPage) clearLocked() {
	p.generation++
	p.renderTransactions(nil)
	p.region.SetTitle(constants.PlaceholderTitle)
	p.lastOptions = nil
}

func (p *TransactionsPage) renderTransactions(items []model.Transaction) {
	rows := make([]views.TransactionRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, views.FormatTransaction(item))
	}
	p.region.SetRows(rows)
	p.bindRemoveControls()
}
