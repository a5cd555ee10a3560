package api

import (
	"context"
	"net/http"

	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
)

const transactionPath = "/transaction"

type TransactionAPI interface {
	List(ctx context.Context, filter transport.Params, cb Callback[[]model.Transaction])
	Remove(ctx context.Context, filter transport.Params, cb Callback[Empty])
	Create(ctx context.Context, data transport.Params, cb Callback[model.Transaction])
}

// check it meets the interface
var _ TransactionAPI = &TransactionClient{}

type TransactionClient struct {
	c *Client
}

func (t *TransactionClient) List(ctx context.Context, filter transport.Params, cb Callback[[]model.Transaction]) {
	t.c.transport.Send(ctx, transport.Options{
		Method:   http.MethodGet,
		URL:      t.c.url(transactionPath),
		Data:     filter,
		Callback: decodeInto(cb),
	})
}

func (t *TransactionClient) Remove(ctx context.Context, filter transport.Params, cb Callback[Empty]) {
	t.c.transport.Send(ctx, transport.Options{
		Method:   http.MethodDelete,
		URL:      t.c.url(transactionPath),
		Data:     filter,
		Callback: decodeInto(cb),
	})
}

func (t *TransactionClient) Create(ctx context.Context, data transport.Params, cb Callback[model.Transaction]) {
	t.c.transport.Send(ctx, transport.Options{
		Method:   http.MethodPost,
		URL:      t.c.url(transactionPath),
		Data:     data,
		Callback: decodeInto(cb),
	})
}
