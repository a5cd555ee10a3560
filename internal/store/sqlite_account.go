package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func (s *Store) CreateAccount(name string, userID int64) (*Account, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (name, user_id, created_at)
        VALUES (?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	acc := &Account{Name: name, UserID: userID, CreatedAt: s.now().Truncate(time.Second)}

	err = stmt.QueryRow(acc.Name, acc.UserID, acc.CreatedAt.Format(timeLayout)).Scan(&acc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return acc, nil
}

// GetAccounts lists the accounts of userID; zero lists every account.
func (s *Store) GetAccounts(userID int64) ([]*Account, error) {
	query := `
        SELECT id, name, user_id, created_at
        FROM accounts
    `
	var args []any
	if userID != 0 {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) GetAccountByID(id int64) (*Account, error) {
	row := s.db.QueryRow("SELECT id, name, user_id, created_at FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}

	return acc, nil
}

// DeleteAccount removes the account and, through the foreign key, its
// transactions.
func (s *Store) DeleteAccount(id int64) error {
	result, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*Account, error) {
	acc := &Account{}
	var createdAt string

	if err := row.Scan(&acc.ID, &acc.Name, &acc.UserID, &createdAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for account %d: %w", acc.ID, err)
	}
	acc.CreatedAt = t

	return acc, nil
}
