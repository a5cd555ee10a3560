package store

type AccountRepository interface {
	CreateAccount(name string, userID int64) (*Account, error)
	GetAccounts(userID int64) ([]*Account, error)
	GetAccountByID(id int64) (*Account, error)
	DeleteAccount(id int64) error
}

type TransactionRepository interface {
	CreateTransaction(tx Transaction) (*Transaction, error)
	GetTransactions(filter TransactionFilter) ([]*Transaction, error)
	DeleteTransaction(id int64) error
}

type Repository interface {
	AccountRepository
	TransactionRepository
	ExecTx(fn func(*Store) error) error
	Close() error
}
