package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-platform/internal/api/dto"
	"github.com/spec-kit/booking-platform/internal/domain"
	"github.com/spec-kit/booking-platform/internal/gateway"
	"github.com/spec-kit/booking-platform/internal/service"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// BookingsHandler exposes the booking orchestration and the events passthrough.
type BookingsHandler struct {
	bookings *service.BookingService
	events   gateway.EventsClient
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService, eventsClient gateway.EventsClient) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService, events: eventsClient}
}

// Create handles POST /users/bookings/.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	var req dto.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EventID == "" || req.UserID == "" {
		return apperrors.NewValidationError("event_id and user_id required", nil)
	}
	if !req.Price.IsPositive() {
		return apperrors.NewValidationError("price must be positive", nil)
	}
	if req.TicketCount <= 0 {
		return apperrors.NewValidationError("ticket_count must be positive", nil)
	}

	confirmation, err := h.bookings.CreateBooking(c.UserContext(), domain.BookingRequest{
		EventID:     req.EventID,
		UserID:      req.UserID,
		Price:       req.Price,
		TicketCount: req.TicketCount,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.BookingCreateResponse{
		Message:          "Booking successful",
		BookingID:        confirmation.BookingID,
		RemainingBalance: confirmation.RemainingBalance,
	})
}

// ListEvents handles GET /users/events/. The upstream body passes through
// untouched.
func (h *BookingsHandler) ListEvents(c *fiber.Ctx) error {
	body, err := h.events.ListEvents(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
