package service

import (
	"fmt"
	"strings"

	"github.com/hance08/bills/internal/store"
	"github.com/hance08/bills/internal/validation"
)

// validateTransactionInput checks every field and returns the record to
// store.
func (ts *TransactionService) validateTransactionInput(input TransactionInput) (store.Transaction, error) {
	if err := validation.ValidateType(input.Type); err != nil {
		return store.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(input.Name)
	if err := validation.ValidateName(name); err != nil {
		return store.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sum, err := validation.ParseSum(input.Sum)
	if err != nil {
		return store.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if input.AccountID <= 0 {
		return store.Transaction{}, fmt.Errorf("%w: invalid account ID %d", ErrInvalidInput, input.AccountID)
	}

	return store.Transaction{
		AccountID: input.AccountID,
		Type:      input.Type,
		Name:      name,
		Sum:       sum,
	}, nil
}
