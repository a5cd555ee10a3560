package store

import (
	"errors"
	"fmt"
	"time"

	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateTransaction(tx Transaction) (*Transaction, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO transactions (account_id, type, name, sum, created_at)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.now()
	}
	tx.CreatedAt = tx.CreatedAt.Truncate(time.Second)

	err = stmt.QueryRow(tx.AccountID, tx.Type, tx.Name, tx.Sum.String(), tx.CreatedAt.Format(timeLayout)).Scan(&tx.ID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return nil, fmt.Errorf("failed to create transaction '%s': %w", tx.Name, ErrConstraintViolation)
		}
		return nil, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return &tx, nil
}

func (s *Store) GetTransactions(filter TransactionFilter) ([]*Transaction, error) {
	query := `
        SELECT id, account_id, type, name, sum, created_at
        FROM transactions
    `
	var args []any
	if filter.AccountID != 0 {
		query += " WHERE account_id = ?"
		args = append(args, filter.AccountID)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*Transaction
	for rows.Next() {
		tx := &Transaction{}
		var sum, createdAt string

		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Type, &tx.Name, &sum, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if tx.Sum, err = decimal.NewFromString(sum); err != nil {
			return nil, fmt.Errorf("invalid sum for transaction %d: %w", tx.ID, err)
		}
		if tx.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("invalid created_at for transaction %d: %w", tx.ID, err)
		}

		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (s *Store) DeleteTransaction(id int64) error {
	result, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction with ID %d: %w", id, ErrRecordNotFound)
	}

	return nil
}
