package dto

// NotificationCreateRequest payload for new notifications.
type NotificationCreateRequest struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
}

// NotificationView is the listing shape: exactly the stored pair.
type NotificationView struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
}

// NotificationCountResponse wraps the per-user cardinality.
type NotificationCountResponse struct {
	NotificationCount int64 `json:"notification_count"`
}
