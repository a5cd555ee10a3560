package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/hance08/bills/internal/api"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
)

// pending holds callbacks until the test decides to complete them, so the
// order in which responses arrive is under test control.
type pending[T any] struct {
	filter transport.Params
	id     int64
	cb     api.Callback[T]
}

func (p pending[T]) succeed(data T) {
	p.cb(nil, &api.Envelope[T]{Success: true, Data: data})
}

func (p pending[T]) fail() {
	p.cb(nil, &api.Envelope[T]{Success: false, Error: "not found"})
}

func (p pending[T]) drop() {
	p.cb(errors.New("connection refused"), nil)
}

type fakeAccounts struct {
	mu      sync.Mutex
	gets    []pending[model.Account]
	removes []pending[api.Empty]
	lists   []pending[[]model.Account]
}

func (f *fakeAccounts) List(_ context.Context, filter transport.Params, cb api.Callback[[]model.Account]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, pending[[]model.Account]{filter: filter, cb: cb})
}

func (f *fakeAccounts) Get(_ context.Context, id int64, cb api.Callback[model.Account]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, pending[model.Account]{id: id, cb: cb})
}

func (f *fakeAccounts) Remove(_ context.Context, filter transport.Params, cb api.Callback[api.Empty]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes = append(f.removes, pending[api.Empty]{filter: filter, cb: cb})
}

func (f *fakeAccounts) Create(context.Context, transport.Params, api.Callback[model.Account]) {}

type fakeTransactions struct {
	mu      sync.Mutex
	lists   []pending[[]model.Transaction]
	removes []pending[api.Empty]
}

func (f *fakeTransactions) List(_ context.Context, filter transport.Params, cb api.Callback[[]model.Transaction]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, pending[[]model.Transaction]{filter: filter, cb: cb})
}

func (f *fakeTransactions) Remove(_ context.Context, filter transport.Params, cb api.Callback[api.Empty]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes = append(f.removes, pending[api.Empty]{filter: filter, cb: cb})
}

func (f *fakeTransactions) Create(context.Context, transport.Params, api.Callback[model.Transaction]) {}

type recordingReporter struct {
	mu   sync.Mutex
	ops  []string
	errs []error
}

func (r *recordingReporter) Report(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
}

type countingRefresher struct {
	mu    sync.Mutex
	count int
}

func (c *countingRefresher) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

func (c *countingRefresher) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
