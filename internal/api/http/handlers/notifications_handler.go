package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-platform/internal/api/dto"
	"github.com/spec-kit/booking-platform/internal/service"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// NotificationsHandler exposes the notification service endpoints.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notificationService}
}

// Create handles POST /notifications.
func (h *NotificationsHandler) Create(c *fiber.Ctx) error {
	var req dto.NotificationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	notification, err := h.notifications.Add(c.UserContext(), req.BookingID, req.UserID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Notification added",
		"id":      notification.ID,
	})
}

// ListByUser handles GET /notifications/:user_id.
func (h *NotificationsHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	notifications, err := h.notifications.ListByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}

	views := make([]dto.NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, dto.NotificationView{BookingID: n.BookingID, UserID: n.UserID})
	}
	return c.JSON(views)
}

// CountByUser handles GET /notifications/:user_id/count.
func (h *NotificationsHandler) CountByUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	count, err := h.notifications.CountByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NotificationCountResponse{NotificationCount: count})
}

// DeleteByBooking handles DELETE /notifications/delete/:booking_id.
func (h *NotificationsHandler) DeleteByBooking(c *fiber.Ctx) error {
	bookingID := c.Params("booking_id")

	if err := h.notifications.DeleteByBooking(c.UserContext(), bookingID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Notification deleted successfully"})
}
