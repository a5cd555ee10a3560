package service

import (
	"github.com/hance08/bills/internal/store"
)

type TransactionInput struct {
	Type      string
	Name      string
	Sum       string
	AccountID int64
}

type TransactionService struct {
	repo store.Repository
}

func NewTransactionService(repo store.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

// GetTransactions lists the transactions of accountID, newest first. Zero
// lists every transaction.
func (ts *TransactionService) GetTransactions(accountID int64) ([]*store.Transaction, error) {
	return ts.repo.GetTransactions(store.TransactionFilter{AccountID: accountID})
}

// CreateTransaction validates input and stores it for an existing account.
func (ts *TransactionService) CreateTransaction(input TransactionInput) (*store.Transaction, error) {
	tx, err := ts.validateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var created *store.Transaction
	err = ts.repo.ExecTx(func(txStore *store.Store) error {
		if _, err := txStore.GetAccountByID(tx.AccountID); err != nil {
			return err
		}
		var err error
		created, err = txStore.CreateTransaction(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (ts *TransactionService) DeleteTransaction(id int64) error {
	return ts.repo.DeleteTransaction(id)
}
