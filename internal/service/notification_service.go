package service

import (
	"context"

	"github.com/spec-kit/booking-platform/internal/domain"
	"github.com/spec-kit/booking-platform/internal/repository"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// NotificationService exposes the notification store operations.
type NotificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService builds the service.
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: repo}
}

// Add persists a notification. Both fields are required; duplicates on
// booking_id are allowed.
func (s *NotificationService) Add(ctx context.Context, bookingID, userID string) (*domain.Notification, error) {
	if bookingID == "" || userID == "" {
		return nil, apperrors.NewValidationError("missing booking_id or user_id", nil)
	}

	notification := &domain.Notification{
		BookingID: bookingID,
		UserID:    userID,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return notification, nil
}

// ListByUser returns all notifications for a user, oldest first. A user
// with no notifications gets an empty list, not an error.
func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return notifications, nil
}

// CountByUser returns the number of notifications for a user.
func (s *NotificationService) CountByUser(ctx context.Context, userID string) (int64, error) {
	count, err := s.notifications.CountByUser(ctx, userID)
	if err != nil {
		return 0, apperrors.NewInternalError(err)
	}
	return count, nil
}

// DeleteByBooking removes at most one notification for the booking.
func (s *NotificationService) DeleteByBooking(ctx context.Context, bookingID string) error {
	deleted, err := s.notifications.DeleteByBooking(ctx, bookingID)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !deleted {
		return apperrors.NewNotFound("notification", map[string]any{"booking_id": bookingID})
	}
	return nil
}
