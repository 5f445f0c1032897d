package domain

import "github.com/shopspring/decimal"

// BookingRequest is the transient payload forwarded to the booking
// service. Nothing in it is persisted locally.
type BookingRequest struct {
	EventID     string          `json:"event_id"`
	UserID      string          `json:"user_id"`
	Price       decimal.Decimal `json:"price"`
	TicketCount int             `json:"ticket_count"`
}

// BookingConfirmation is the orchestrator's result: the identifier minted
// by the booking service plus the account balance after the debit.
type BookingConfirmation struct {
	BookingID        string
	RemainingBalance decimal.Decimal
}
