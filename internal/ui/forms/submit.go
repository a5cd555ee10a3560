package forms

import (
	"context"
	"fmt"

	"github.com/hance08/bills/internal/api"
	"github.com/hance08/bills/internal/constants"
	"github.com/hance08/bills/internal/model"
	"github.com/hance08/bills/internal/transport"
	"github.com/hance08/bills/internal/validation"
)

// SubmitHandler sends validated form values to the backend. Submit returns
// validation errors directly; the outcome of the request goes to done.
type SubmitHandler interface {
	Submit(ctx context.Context, values transport.Params, done func(error)) error
}

const (
	KindIncome  = "income"
	KindExpense = "expense"
	KindAccount = "account"
)

// NewSubmitHandler returns the handler registered for kind.
func NewSubmitHandler(kind string, client *api.Client) (SubmitHandler, error) {
	switch kind {
	case KindIncome:
		return &TransactionSubmitter{api: client.Transactions, txType: constants.TypeIncome}, nil
	case KindExpense:
		return &TransactionSubmitter{api: client.Transactions, txType: constants.TypeExpense}, nil
	case KindAccount:
		return &AccountSubmitter{api: client.Accounts}, nil
	default:
		return nil, fmt.Errorf("unknown form kind %q", kind)
	}
}

type TransactionSubmitter struct {
	api    api.TransactionAPI
	txType string
}

func NewTransactionSubmitter(txAPI api.TransactionAPI, txType string) *TransactionSubmitter {
	return &TransactionSubmitter{api: txAPI, txType: txType}
}

func (s *TransactionSubmitter) Submit(ctx context.Context, values transport.Params, done func(error)) error {
	name, _ := values.Get("name")
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	rawSum, _ := values.Get("sum")
	sum, err := validation.ParseSum(rawSum)
	if err != nil {
		return err
	}

	rawAccount, _ := values.Get("account_id")
	accountID, err := validation.ParseID(rawAccount)
	if err != nil {
		return fmt.Errorf("account: %w", err)
	}

	data := transport.P(
		"type", s.txType,
		"name", name,
		"sum", sum.String(),
		"account_id", fmt.Sprint(accountID),
	)

	s.api.Create(ctx, data, func(err error, resp *api.Envelope[model.Transaction]) {
		done(api.Check(err, resp))
	})
	return nil
}

type AccountSubmitter struct {
	api api.AccountAPI
}

func NewAccountSubmitter(accountAPI api.AccountAPI) *AccountSubmitter {
	return &AccountSubmitter{api: accountAPI}
}

func (s *AccountSubmitter) Submit(ctx context.Context, values transport.Params, done func(error)) error {
	name, _ := values.Get("name")
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	s.api.Create(ctx, transport.P("name", name), func(err error, resp *api.Envelope[model.Account]) {
		done(api.Check(err, resp))
	})
	return nil
}
