package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-platform/internal/domain"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// memNotificationRepo is an in-memory NotificationRepository that mirrors
// the real store's semantics, duplicates included.
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

func TestAddThenListContainsPairExactlyOnceMore(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	countPair := func(userID, bookingID string) int {
		list, err := svc.ListByUser(ctx, userID)
		require.NoError(t, err)
		n := 0
		for _, item := range list {
			if item.BookingID == bookingID && item.UserID == userID {
				n++
			}
		}
		return n
	}

	before := countPair("u1", "b1")
	_, err := svc.Add(ctx, "b1", "u1")
	require.NoError(t, err)
	assert.Equal(t, before+1, countPair("u1", "b1"))

	// duplicates are permitted
	_, err = svc.Add(ctx, "b1", "u1")
	require.NoError(t, err)
	assert.Equal(t, before+2, countPair("u1", "b1"))
}

func TestAddMissingFields(t *testing.T) {
	svc := NewNotificationService(&memNotificationRepo{})
	ctx := context.Background()

	for _, tc := range []struct{ booking, user string }{
		{"", "u1"},
		{"b1", ""},
		{"", ""},
	} {
		_, err := svc.Add(ctx, tc.booking, tc.user)
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		assert.Equal(t, 400, domainErr.HTTPStatus)
	}
}

func TestCountMatchesListLength(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Add(ctx, "b"+strconv.Itoa(i), "u1")
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, "bx", "u2")
	require.NoError(t, err)

	for _, userID := range []string{"u1", "u2", "u3"} {
		list, err := svc.ListByUser(ctx, userID)
		require.NoError(t, err)
		count, err := svc.CountByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(len(list)), count)
	}
}

func TestListUnknownUserIsEmptyNotError(t *testing.T) {
	svc := NewNotificationService(&memNotificationRepo{})

	list, err := svc.ListByUser(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteMissingBookingLeavesStoreUnchanged(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, "b1", "u1")
	require.NoError(t, err)

	err = svc.DeleteByBooking(ctx, "no-such-booking")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)

	count, err := svc.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteRemovesAtMostOne(t *testing.T) {
	repo := &memNotificationRepo{}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, "b1", "u1")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "b1", "u1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByBooking(ctx, "b1"))

	count, err := svc.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
