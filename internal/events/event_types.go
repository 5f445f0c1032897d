package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated EventType = "account_created"
	EventBookingCreated EventType = "booking_created"
	EventDebitMismatch  EventType = "debit_mismatch"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID        string          `json:"booking_id"`
	EventID          string          `json:"event_id"`
	Price            decimal.Decimal `json:"price"`
	TicketCount      int             `json:"ticket_count"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// DebitMismatchPayload records a booking that succeeded upstream while the
// local debit did not apply. These events are the reconciliation trail.
type DebitMismatchPayload struct {
	BookingID string          `json:"booking_id"`
	Price     decimal.Decimal `json:"price"`
	Reason    string          `json:"reason"`
}
