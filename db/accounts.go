package db

import (
	"context"
	"database/sql"
	"errors"

	"tierevents/models"
)

// AccountStore holds credentials for the built-in identity provider.
type AccountStore struct {
	conn *sql.DB
}

func NewAccountStore(conn *sql.DB) *AccountStore {
	return &AccountStore{conn: conn}
}

// Create inserts a. Returns ErrDuplicate when the email is taken.
func (s *AccountStore) Create(ctx context.Context, a *models.Account) error {
	err := s.conn.QueryRowContext(ctx, `
		INSERT INTO local_accounts (id, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, a.ID, a.Email, a.PasswordHash, a.FirstName, a.LastName).Scan(&a.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// GetByEmail returns the account or nil if none matches.
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, email, password_hash, first_name, last_name, created_at
		FROM local_accounts WHERE email = $1
	`, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
