package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the domain model for platform accounts that book events.
type Account struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Balance      decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Projection returns the externally visible view of the account.
func (a *Account) Projection() AccountProjection {
	return AccountProjection{
		ID:       a.ID,
		Email:    a.Email,
		Username: a.Username,
		Balance:  a.Balance,
	}
}

// AccountProjection is the public shape of an account. The password hash
// never leaves the service.
type AccountProjection struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}
