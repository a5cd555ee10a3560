package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTransport answers every request synchronously with a canned body.
type recordingTransport struct {
	sent []transport.Options
	body string
	err  error
}

func (r *recordingTransport) Send(_ context.Context, opts transport.Options) {
	r.sent = append(r.sent, opts)
	if r.err != nil {
		opts.Callback(r.err, nil)
		return
	}
	opts.Callback(nil, &transport.Response{Status: http.StatusOK, Body: []byte(r.body)})
}

func TestAccountGet(t *testing.T) {
	rt := &recordingTransport{body: `{"success":true,"data":{"id":7,"name":"Wallet"}}`}
	c := NewClient(rt, "http://backend/")

	var got *Envelope[model.Account]
	c.Accounts.Get(context.Background(), 7, func(err error, resp *Envelope[model.Account]) {
		require.NoError(t, err)
		got = resp
	})

	require.Len(t, rt.sent, 1)
	assert.Equal(t, http.MethodGet, rt.sent[0].Method)
	assert.Equal(t, "http://backend/account/7", rt.sent[0].URL)
	assert.Nil(t, rt.sent[0].Data)
	require.NotNil(t, got)
	assert.True(t, got.Success)
	assert.Equal(t, "Wallet", got.Data.Name)
}

func TestAccountListAndRemoveRequests(t *testing.T) {
	rt := &recordingTransport{body: `{"success":true,"data":[]}`}
	c := NewClient(rt, "http://backend")

	c.Accounts.List(context.Background(), transport.P("user_id", "1"), nil)
	c.Accounts.Remove(context.Background(), transport.P("id", "7"), nil)
	c.Accounts.Create(context.Background(), transport.P("name", "Cash"), nil)

	require.Len(t, rt.sent, 3)
	assert.Equal(t, http.MethodGet, rt.sent[0].Method)
	assert.Equal(t, "http://backend/account", rt.sent[0].URL)
	assert.Equal(t, transport.P("user_id", "1"), rt.sent[0].Data)
	assert.Equal(t, http.MethodDelete, rt.sent[1].Method)
	assert.Equal(t, transport.P("id", "7"), rt.sent[1].Data)
	assert.Equal(t, http.MethodPost, rt.sent[2].Method)
}

func TestTransactionList(t *testing.T) {
	rt := &recordingTransport{body: `{"success":true,"data":[{"id":1,"type":"income","name":"Salary","sum":100,"created_at":"2019-03-10 03:20:41","account_id":7}]}`}
	c := NewClient(rt, "http://backend")

	var items []model.Transaction
	c.Transactions.List(context.Background(), transport.P("account_id", "7"), func(err error, resp *Envelope[[]model.Transaction]) {
		require.NoError(t, Check(err, resp))
		items = resp.Data
	})

	assert.Equal(t, "http://backend/transaction", rt.sent[0].URL)
	require.Len(t, items, 1)
	assert.Equal(t, "Salary", items[0].Name)
	assert.Equal(t, "100", items[0].Sum.String())
}

func TestTransactionRemoveAndCreateUseNonReadMethods(t *testing.T) {
	rt := &recordingTransport{body: `{"success":true}`}
	c := NewClient(rt, "http://backend")

	c.Transactions.Remove(context.Background(), transport.P("id", "3"), nil)
	c.Transactions.Create(context.Background(), transport.P("type", "expense"), nil)

	assert.Equal(t, http.MethodDelete, rt.sent[0].Method)
	assert.Equal(t, http.MethodPost, rt.sent[1].Method)
}

func TestDecodeFailureIsTransportError(t *testing.T) {
	rt := &recordingTransport{body: `{"success":"yes"}`}
	c := NewClient(rt, "http://backend")

	var gotErr error
	c.Transactions.Remove(context.Background(), transport.P("id", "3"), func(err error, resp *Envelope[Empty]) {
		gotErr = err
		assert.Nil(t, resp)
	})

	assert.ErrorIs(t, gotErr, transport.ErrTransport)
}

func TestTransportErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	rt := &recordingTransport{err: boom}
	c := NewClient(rt, "http://backend")

	var gotErr error
	c.Accounts.Get(context.Background(), 1, func(err error, resp *Envelope[model.Account]) {
		gotErr = err
	})

	assert.Same(t, boom, gotErr)
}

func TestCheck(t *testing.T) {
	boom := errors.New("boom")
	assert.Same(t, boom, Check[Empty](boom, nil))
	assert.ErrorIs(t, Check[Empty](nil, nil), ErrUnsuccessful)
	assert.NoError(t, Check(nil, &Envelope[Empty]{Success: true}))

	err := Check(nil, &Envelope[Empty]{Success: false, Error: "account not found"})
	assert.ErrorIs(t, err, ErrUnsuccessful)
	assert.Contains(t, err.Error(), "account not found")

	assert.Equal(t, ErrUnsuccessful, Check(nil, &Envelope[Empty]{}))
}
