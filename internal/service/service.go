// Package service holds the backend rules on top of the store: input
// validation and the checks that span several records.
package service

import (
	"errors"

	"github.com/hance08/bills/internal/store"
)

// ErrInvalidInput marks requests rejected before they reach the store.
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
}

func NewService(repo store.Repository) *Service {
	return &Service{
		Account:     NewAccountService(repo),
		Transaction: NewTransactionService(repo),
	}
}
