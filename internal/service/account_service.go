package service

import (
	"fmt"
	"strings"

	"github.com/hance08/bills/internal/store"
	"github.com/hance08/bills/internal/validation"
)

type AccountInput struct {
	Name   string
	UserID int64
}

type AccountService struct {
	repo store.AccountRepository
}

func NewAccountService(repo store.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// GetAccounts lists the accounts of userID, or every account for zero.
func (as *AccountService) GetAccounts(userID int64) ([]*store.Account, error) {
	return as.repo.GetAccounts(userID)
}

func (as *AccountService) GetAccountByID(id int64) (*store.Account, error) {
	return as.repo.GetAccountByID(id)
}

func (as *AccountService) CreateAccount(input AccountInput) (*store.Account, error) {
	name := strings.TrimSpace(input.Name)
	if err := validation.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.UserID < 0 {
		return nil, fmt.Errorf("%w: user ID can't be negative", ErrInvalidInput)
	}

	return as.repo.CreateAccount(name, input.UserID)
}

// DeleteAccount removes the account together with its transactions.
func (as *AccountService) DeleteAccount(id int64) error {
	return as.repo.DeleteAccount(id)
}
