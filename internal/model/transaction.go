package model

import (
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	Sum       decimal.Decimal `json:"sum"`
	CreatedAt Timestamp       `json:"created_at"`
	AccountID int64           `json:"account_id"`
}
