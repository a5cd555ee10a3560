package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
)

const accountPath = "/account"

type AccountAPI interface {
	List(ctx context.Context, filter transport.Params, cb Callback[[]model.Account])
	Get(ctx context.Context, id int64, cb Callback[model.Account])
	Remove(ctx context.Context, filter transport.Params, cb Callback[Empty])
	Create(ctx context.Context, data transport.Params, cb Callback[model.Account])
}

// check it meets the interface
var _ AccountAPI = &AccountClient{}

type AccountClient struct {
	c *Client
}

func (a *AccountClient) List(ctx context.Context, filter transport.Params, cb Callback[[]model.Account]) {
	a.c.transport.Send(ctx, transport.Options{
		Method:   http.MethodGet,
		URL:      a.c.url(accountPath),
		Data:     filter,
		Callback: decodeInto(cb),
	})
}

func (a *AccountClient) Get(ctx context.Context, id int64, cb Callback[model.Account]) {
	a.c.transport.Send(ctx, transport.Options{
		Method:   http.MethodGet,
		URL:      a.c.url(accountPath + "/" + strconv.FormatInt(id, 10)),
		Callback: decodeInto(cb),
	})
}

func (a *AccountClient) Remove(ctx context.Context, filter transport.Params, cb Callback[Empty]) {
	a.c.transport.Send(ctx, transport.Options{
		Method:   http.MethodDelete,
		URL:      a.c.url(accountPath),
		Data:     filter,
		Callback: decodeInto(cb),
	})
}

func (a *AccountClient) Create(ctx context.Context, data transport.Params, cb Callback[model.Account]) {
	a.c.transport.Send(ctx, transport.Options{
		Method:   http.MethodPost,
		URL:      a.c.url(accountPath),
		Data:     data,
		Callback: decodeInto(cb),
	})
}
