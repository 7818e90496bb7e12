package models

import (
	"time"
)

// Account is a credential record for the built-in identity provider.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity returns the provider view of the account.
func (a *Account) Identity() Identity {
	return Identity{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
