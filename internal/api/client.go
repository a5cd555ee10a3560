package api

import (
	"strings"

	"github.com/hance08/bills/internal/transport"
)

// Client holds what every resource API needs: the transport and the base
// URL of the backend.
type Client struct {
	transport transport.Transport
	baseURL   string

	Accounts     *AccountClient
	Transactions *TransactionClient
}

func NewClient(t transport.Transport, baseURL string) *Client {
	c := &Client{
		transport: t,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
	c.Accounts = &AccountClient{c: c}
	c.Transactions = &TransactionClient{c: c}
	return c
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}
