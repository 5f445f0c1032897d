package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-platform/internal/domain"
	"github.com/spec-kit/booking-platform/internal/events"
	"github.com/spec-kit/booking-platform/internal/gateway"
	"github.com/spec-kit/booking-platform/internal/repository"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// BookingService coordinates a balance-gated booking across the local
// account store and the external booking service. There is no two-phase
// commit between the two; the debit is a single conditional statement
// executed only after the remote booking succeeds.
type BookingService struct {
	accounts   repository.AccountRepository
	bookings   gateway.BookingClient
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// BookingDependencies bundles collaborators for the booking service.
type BookingDependencies struct {
	AccountRepo   repository.AccountRepository
	BookingClient gateway.BookingClient
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		accounts:   deps.AccountRepo,
		bookings:   deps.BookingClient,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateBooking runs the orchestration:
//  1. load the account, 404 if absent
//  2. advisory balance check; the booking service is never called when the
//     read balance cannot cover the price
//  3. synchronous call to the booking service
//  4. conditional atomic debit; a debit that does not apply after a
//     successful remote booking is logged for reconciliation, never
//     silently dropped
func (s *BookingService) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	account, err := s.accounts.GetByID(ctx, req.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": req.UserID})
		}
		return nil, apperrors.NewInternalError(err)
	}

	if account.Balance.LessThan(req.Price) {
		return nil, apperrors.NewInsufficientBalance()
	}

	bookingID, err := s.bookings.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	remaining, applied, err := s.accounts.DebitBalance(ctx, account.ID, req.Price)
	if err != nil || !applied {
		return nil, s.reconcileDebitFailure(ctx, account.ID, bookingID, req, err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventBookingCreated,
		AccountID: account.ID,
		Payload: events.BookingCreatedPayload{
			BookingID:        bookingID,
			EventID:          req.EventID,
			Price:            req.Price,
			TicketCount:      req.TicketCount,
			RemainingBalance: remaining,
		},
	})

	return &domain.BookingConfirmation{
		BookingID:        bookingID,
		RemainingBalance: remaining,
	}, nil
}

// reconcileDebitFailure records a booking that exists upstream with no
// matching local debit. The record is the reconciliation trail; the
// booking itself is not compensated.
func (s *BookingService) reconcileDebitFailure(ctx context.Context, accountID, bookingID string, req domain.BookingRequest, err error) error {
	reason := "balance no longer covers price"
	if err != nil {
		reason = err.Error()
	}

	s.logger.Error("booking confirmed upstream but local debit did not apply; reconciliation required",
		zap.String("booking_id", bookingID),
		zap.String("user_id", accountID),
		zap.String("price", req.Price.String()),
		zap.String("reason", reason),
	)

	s.publish(ctx, events.Event{
		Type:      events.EventDebitMismatch,
		AccountID: accountID,
		Payload: events.DebitMismatchPayload{
			BookingID: bookingID,
			Price:     req.Price,
			Reason:    reason,
		},
	})

	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return apperrors.NewInsufficientBalance()
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
