package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-platform/internal/domain"
	"github.com/spec-kit/booking-platform/internal/events"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// ---- mock implementations ----

type mockAccountRepo struct {
	getByIDFn       func(ctx context.Context, id string) (*domain.Account, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	createFn        func(ctx context.Context, account *domain.Account) error
	listFn          func(ctx context.Context) ([]domain.Account, error)
	debitFn         func(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, bool, error)

	debitCalls int
}

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return errors.New("not configured")
}

func (m *mockAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errors.New("not configured")
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.New("not configured")
}

func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, errors.New("not configured")
}

func (m *mockAccountRepo) DebitBalance(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	m.debitCalls++
	if m.debitFn != nil {
		return m.debitFn(ctx, id, amount)
	}
	return decimal.Decimal{}, false, errors.New("not configured")
}

type mockBookingClient struct {
	createFn func(ctx context.Context, req domain.BookingRequest) (string, error)
	calls    int
}

func (m *mockBookingClient) CreateBooking(ctx context.Context, req domain.BookingRequest) (string, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return "", errors.New("not configured")
}

// ---- helpers ----

func accountWithBalance(balance int64) *domain.Account {
	return &domain.Account{
		ID:       "acct-1",
		Email:    "alice@example.com",
		Username: "alice",
		Balance:  decimal.NewFromInt(balance),
	}
}

func bookingRequest(price int64) domain.BookingRequest {
	return domain.BookingRequest{
		EventID:     "evt-1",
		UserID:      "acct-1",
		Price:       decimal.NewFromInt(price),
		TicketCount: 2,
	}
}

func newBookingServiceForTest(repo *mockAccountRepo, client *mockBookingClient) *BookingService {
	return NewBookingService(BookingDependencies{
		AccountRepo:   repo,
		BookingClient: client,
		Dispatcher:    events.NewInMemoryDispatcher(),
		Logger:        zap.NewNop(),
	})
}

// ---- tests ----

func TestCreateBookingSuccessDebitsBalance(t *testing.T) {
	repo := &mockAccountRepo{
		getByIDFn: func(_ context.Context, id string) (*domain.Account, error) {
			return accountWithBalance(100), nil
		},
		debitFn: func(_ context.Context, id string, amount decimal.Decimal) (decimal.Decimal, bool, error) {
			assert.Equal(t, "acct-1", id)
			assert.True(t, amount.Equal(decimal.NewFromInt(50)))
			return decimal.NewFromInt(50), true, nil
		},
	}
	client := &mockBookingClient{
		createFn: func(_ context.Context, req domain.BookingRequest) (string, error) {
			return "B1", nil
		},
	}

	svc := newBookingServiceForTest(repo, client)
	confirmation, err := svc.CreateBooking(context.Background(), bookingRequest(50))

	require.NoError(t, err)
	assert.Equal(t, "B1", confirmation.BookingID)
	assert.True(t, confirmation.RemainingBalance.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 1, repo.debitCalls)
}

func TestCreateBookingInsufficientBalanceSkipsGateway(t *testing.T) {
	repo := &mockAccountRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return accountWithBalance(30), nil
		},
	}
	client := &mockBookingClient{}

	svc := newBookingServiceForTest(repo, client)
	_, err := svc.CreateBooking(context.Background(), bookingRequest(50))

	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "INSUFFICIENT_BALANCE", domainErr.Code)
	assert.Equal(t, 0, client.calls, "booking gateway must not be invoked")
	assert.Equal(t, 0, repo.debitCalls, "no mutation on insufficient balance")
}

func TestCreateBookingRejectedLeavesBalanceUntouched(t *testing.T) {
	repo := &mockAccountRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return accountWithBalance(100), nil
		},
	}
	client := &mockBookingClient{
		createFn: func(_ context.Context, _ domain.BookingRequest) (string, error) {
			return "", apperrors.NewBookingRejected(400, "event sold out")
		},
	}

	svc := newBookingServiceForTest(repo, client)
	_, err := svc.CreateBooking(context.Background(), bookingRequest(50))

	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "BOOKING_REJECTED", domainErr.Code)
	assert.Equal(t, "event sold out", domainErr.Message)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, 0, repo.debitCalls, "no debit after upstream rejection")
}

func TestCreateBookingUnknownAccount(t *testing.T) {
	repo := &mockAccountRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return nil, pgx.ErrNoRows
		},
	}
	client := &mockBookingClient{}

	svc := newBookingServiceForTest(repo, client)
	_, err := svc.CreateBooking(context.Background(), bookingRequest(50))

	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, 0, client.calls)
}

func TestCreateBookingGatewayUnreachable(t *testing.T) {
	repo := &mockAccountRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return accountWithBalance(100), nil
		},
	}
	client := &mockBookingClient{
		createFn: func(_ context.Context, _ domain.BookingRequest) (string, error) {
			return "", apperrors.NewGatewayUnreachable("booking", errors.New("connection refused"))
		},
	}

	svc := newBookingServiceForTest(repo, client)
	_, err := svc.CreateBooking(context.Background(), bookingRequest(50))

	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "GATEWAY_UNREACHABLE", domainErr.Code)
	assert.Equal(t, 502, domainErr.HTTPStatus)
	assert.Equal(t, 0, repo.debitCalls)
}

func TestCreateBookingDebitMismatchPublishesReconciliation(t *testing.T) {
	repo := &mockAccountRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return accountWithBalance(100), nil
		},
		debitFn: func(_ context.Context, _ string, _ decimal.Decimal) (decimal.Decimal, bool, error) {
			// a concurrent booking drained the balance between check and debit
			return decimal.Decimal{}, false, nil
		},
	}
	client := &mockBookingClient{
		createFn: func(_ context.Context, _ domain.BookingRequest) (string, error) {
			return "B1", nil
		},
	}

	dispatcher := events.NewInMemoryDispatcher()
	var mismatches []events.Event
	dispatcher.Subscribe(events.EventDebitMismatch, func(_ context.Context, event events.Event) error {
		mismatches = append(mismatches, event)
		return nil
	})

	svc := NewBookingService(BookingDependencies{
		AccountRepo:   repo,
		BookingClient: client,
		Dispatcher:    dispatcher,
		Logger:        zap.NewNop(),
	})

	_, err := svc.CreateBooking(context.Background(), bookingRequest(50))

	require.Error(t, err)
	assert.Equal(t, "INSUFFICIENT_BALANCE", apperrors.ToDomainError(err).Code)
	require.Len(t, mismatches, 1)
	payload, ok := mismatches[0].Payload.(events.DebitMismatchPayload)
	require.True(t, ok)
	assert.Equal(t, "B1", payload.BookingID)
}
