package dto

import "github.com/shopspring/decimal"

// BookingCreateRequest payload for new bookings.
type BookingCreateRequest struct {
	EventID     string          `json:"event_id"`
	UserID      string          `json:"user_id"`
	Price       decimal.Decimal `json:"price"`
	TicketCount int             `json:"ticket_count"`
}

// BookingCreateResponse mirrors the original contract.
type BookingCreateResponse struct {
	Message          string          `json:"message"`
	BookingID        string          `json:"booking_id"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}
