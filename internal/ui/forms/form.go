// Package forms drives the create forms. A single Form type serves every
// form; what a submission does is decided by the injected SubmitHandler.
package forms

import (
	"context"
	"errors"
	"sync"

	"github.com/hance08/bills/internal/api"
	"github.com/hance08/bills/internal/errhandler"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
	"github.com/hance08/bills/internal/ui/pages"
)

type Deps struct {
	Handler SubmitHandler
	// Accounts populates the account options. Forms without an account
	// selector leave it nil.
	Accounts api.AccountAPI
	Refresh  pages.Refresher
	Failures errhandler.Reporter
	// OnClose runs after a successful submission, e.g. to close the window
	// that hosts the form.
	OnClose func()
}

type Form struct {
	ID string

	handler  SubmitHandler
	accounts api.AccountAPI
	refresh  pages.Refresher
	failures errhandler.Reporter
	onClose  func()

	mu         sync.Mutex
	values     transport.Params
	options    []model.Account
	optionsGen uint64
}

func New(id string, deps Deps) (*Form, error) {
	if deps.Handler == nil {
		return nil, errors.New("submit handler is required")
	}
	if deps.Refresh == nil {
		deps.Refresh = pages.RefreshFunc(func() {})
	}
	if deps.Failures == nil {
		deps.Failures = errhandler.Silent{}
	}
	if deps.OnClose == nil {
		deps.OnClose = func() {}
	}

	return &Form{
		ID:       id,
		handler:  deps.Handler,
		accounts: deps.Accounts,
		refresh:  deps.Refresh,
		failures: deps.Failures,
		onClose:  deps.OnClose,
	}, nil
}

// Set stores a field value, replacing an earlier value for key.
func (f *Form) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.values {
		if f.values[i].Key == key {
			f.values[i].Value = value
			return
		}
	}
	f.values = append(f.values, transport.Param{Key: key, Value: value})
}

func (f *Form) Values() transport.Params {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(transport.Params, len(f.values))
	copy(out, f.values)
	return out
}

func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = nil
}

// AccountOptions returns the accounts the form offers for selection.
func (f *Form) AccountOptions() []model.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Account, len(f.options))
	copy(out, f.options)
	return out
}

// RenderAccountsList reloads the account options. The options are replaced
// only by the latest successful load.
func (f *Form) RenderAccountsList(ctx context.Context, filter transport.Params) {
	if f.accounts == nil {
		return
	}

	f.mu.Lock()
	f.optionsGen++
	gen := f.optionsGen
	f.mu.Unlock()

	f.accounts.List(ctx, filter, func(err error, resp *api.Envelope[[]model.Account]) {
		if err := api.Check(err, resp); err != nil {
			f.failures.Report("load accounts", err)
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.optionsGen {
			return
		}
		f.options = resp.Data
	})
}

// Submit validates the current values and sends them. On success the form
// is reset, closed and the application refreshed.
func (f *Form) Submit(ctx context.Context) error {
	return f.handler.Submit(ctx, f.Values(), func(err error) {
		if err != nil {
			f.failures.Report("submit "+f.ID, err)
			return
		}
		f.Reset()
		f.onClose()
		f.refresh.Refresh()
	})
}
