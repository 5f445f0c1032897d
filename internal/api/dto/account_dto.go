package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountCreateRequest payload for new accounts.
type AccountCreateRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the public projection plus the issued token.
type LoginResponse struct {
	Username  string          `json:"username"`
	Balance   decimal.Decimal `json:"balance"`
	ID        string          `json:"id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}
