package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-platform/internal/domain"
)

// NotificationRepository defines persistence access for notifications.
// booking_id carries no uniqueness constraint; duplicates are allowed.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// DeleteByBooking removes at most one matching record and reports
	// whether anything was deleted.
	DeleteByBooking(ctx context.Context, bookingID string) (bool, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a Postgres-backed implementation.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (booking_id, user_id)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		notification.BookingID,
		notification.UserID,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	const query = `
        SELECT id, booking_id, user_id, created_at
        FROM notifications WHERE user_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.BookingID, &n.UserID, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE user_id=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) DeleteByBooking(ctx context.Context, bookingID string) (bool, error) {
	// booking_id may appear more than once; delete a single row like the
	// original delete_one semantics.
	const query = `
        DELETE FROM notifications
        WHERE ctid IN (SELECT ctid FROM notifications WHERE booking_id=$1 LIMIT 1)`

	cmd, err := r.pool.Exec(ctx, query, bookingID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
