package domain

import "time"

// Notification correlates a booking with the account it belongs to.
// Duplicates on booking_id are permitted; the store enforces nothing
// beyond presence of both fields.
type Notification struct {
	ID        string
	BookingID string
	UserID    string
	CreatedAt time.Time
}
