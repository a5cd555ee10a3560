package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID        int64
	Name      string
	UserID    int64
	CreatedAt time.Time
}

type Transaction struct {
	ID        int64
	AccountID int64
	Type      string
	Name      string
	Sum       decimal.Decimal
	CreatedAt time.Time
}

type TransactionFilter struct {
	AccountID int64
}
