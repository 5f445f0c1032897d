package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/booking-platform/internal/domain"
)

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	// DebitBalance decrements the balance by amount only when the balance
	// covers it, in a single statement. It returns the new balance and
	// whether the debit applied; applied=false means the balance was left
	// untouched.
	DebitBalance(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, bool, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (email, username, password_hash, balance)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		account.Email,
		account.Username,
		account.PasswordHash,
		account.Balance,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	const query = `
        SELECT id, email, username, password_hash, balance, created_at, updated_at
        FROM accounts ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Email,
			&account.Username,
			&account.PasswordHash,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.getBy(ctx, "id", id)
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.getBy(ctx, "username", username)
}

func (r *accountRepository) getBy(ctx context.Context, column, value string) (*domain.Account, error) {
	query := `
        SELECT id, email, username, password_hash, balance, created_at, updated_at
        FROM accounts WHERE ` + column + `=$1`

	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, value).Scan(
		&account.ID,
		&account.Email,
		&account.Username,
		&account.PasswordHash,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) DebitBalance(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	const query = `
        UPDATE accounts SET balance = balance - $1, updated_at = NOW()
        WHERE id = $2 AND balance >= $1
        RETURNING balance`

	var balance decimal.Decimal
	err := r.pool.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err == pgx.ErrNoRows {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return balance, true, nil
}
