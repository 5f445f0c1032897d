package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/booking-platform/internal/auth"
	"github.com/spec-kit/booking-platform/internal/config"
	"github.com/spec-kit/booking-platform/internal/domain"
	"github.com/spec-kit/booking-platform/internal/events"
	"github.com/spec-kit/booking-platform/internal/repository"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// AccountService coordinates account creation, listing and login.
type AccountService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AccountDependencies bundles collaborators for the account service.
type AccountDependencies struct {
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		accounts:   deps.AccountRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// AccountCreateInput describes the registration payload.
type AccountCreateInput struct {
	Email    string
	Password string
	Username string
	Balance  decimal.Decimal
}

// CreateAccount persists a new account. Uniqueness of email and username
// is delegated to the store's constraints.
func (s *AccountService) CreateAccount(ctx context.Context, input AccountCreateInput) (*domain.Account, error) {
	if input.Balance.IsNegative() {
		return nil, apperrors.NewValidationError("balance must not be negative", nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	account := &domain.Account{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		Balance:      input.Balance,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateAccount()
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventAccountCreated,
		AccountID: account.ID,
		Payload: events.AccountCreatedPayload{
			Username: account.Username,
			Email:    account.Email,
		},
	})

	return account, nil
}

// Login verifies credentials and issues an access token. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Username)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return account, token, exp, nil
}

// ListAccounts returns all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return accounts, nil
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AccountService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
