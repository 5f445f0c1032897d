package handlers_test

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/booking-platform/internal/api/http"
	"github.com/spec-kit/booking-platform/internal/api/http/handlers"
	"github.com/spec-kit/booking-platform/internal/auth"
	"github.com/spec-kit/booking-platform/internal/config"
	"github.com/spec-kit/booking-platform/internal/domain"
	"github.com/spec-kit/booking-platform/internal/gateway"
	"github.com/spec-kit/booking-platform/internal/observability"
	"github.com/spec-kit/booking-platform/internal/service"
)

// ---- shared fixtures ----

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{RequestTimeoutSeconds: 5},
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 5,
			BcryptCost:            4,
		},
		CORS: config.CORSConfig{AllowOrigins: "http://127.0.0.1:5500"},
	}
}

func newTestApp(register func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), testConfig())
	register(app)
	return app
}

func newUserApp(repo *mockAccountRepo, client *mockBookingClient) (*fiber.App, *service.AccountService) {
	return newUserAppWithEvents(repo, client, &stubEventsClient{})
}

func newUserAppWithEvents(repo *mockAccountRepo, client *mockBookingClient, eventsClient gateway.EventsClient) (*fiber.App, *service.AccountService) {
	accountService := service.NewAccountService(testConfig(), service.AccountDependencies{AccountRepo: repo})

	app := newTestApp(func(app *fiber.App) {
		httptransport.RegisterUserRoutes(app, httptransport.UserRouteConfig{
			Health:         handlers.NewHealthHandler(),
			Accounts:       handlers.NewAccountsHandler(accountService),
			Bookings:       handlers.NewBookingsHandler(newBookingServiceForApp(repo, client), eventsClient),
			AuthMiddleware: auth.NewAuthMiddleware(accountService.TokenManager(), repo),
		})
	})
	return app, accountService
}

// ---- mock implementations ----

type mockAccountRepo struct {
	getByIDFn       func(ctx context.Context, id string) (*domain.Account, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	createFn        func(ctx context.Context, account *domain.Account) error
	listFn          func(ctx context.Context) ([]domain.Account, error)
	debitFn         func(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, bool, error)
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

type memNotificationRepo struct {
	rows []domain.Notification
	seq  int
}

func (m *memNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	m.seq++
	n.ID = "n-" + strconv.Itoa(m.seq)
	m.rows = append(m.rows, *n)
	return nil
}

func (m *memNotificationRepo) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	out := make([]domain.Notification, 0)
	for _, n := range m.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotificationRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	list, _ := m.ListByUser(ctx, userID)
	return int64(len(list)), nil
}

func (m *memNotificationRepo) DeleteByBooking(_ context.Context, bookingID string) (bool, error) {
	for i, n := range m.rows {
		if n.BookingID == bookingID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
