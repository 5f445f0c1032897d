package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/spec-kit/booking-platform/internal/config"
	"github.com/spec-kit/booking-platform/internal/domain"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// BookingClient forwards booking requests to the booking service.
type BookingClient interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (string, error)
}

type bookingClient struct {
	url    string
	client *http.Client
}

// NewBookingClient builds an HTTP client with the configured timeout.
// The booking service contract has no bound of its own, so the client
// timeout is the only thing keeping a slow upstream from pinning requests.
func NewBookingClient(cfg config.GatewayConfig) BookingClient {
	return &bookingClient{
		url:    cfg.BookingURL,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

type bookingResponse struct {
	BookingID string `json:"booking_id"`
}

type bookingError struct {
	Error string `json:"error"`
}

// CreateBooking posts the request and returns the minted booking id.
// Non-2xx answers become BookingRejected carrying the upstream message;
// transport failures become GatewayUnreachable.
func (c *bookingClient) CreateBooking(ctx context.Context, req domain.BookingRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", apperrors.NewGatewayUnreachable("booking", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var upstream bookingError
		_ = json.NewDecoder(resp.Body).Decode(&upstream)
		return "", apperrors.NewBookingRejected(resp.StatusCode, upstream.Error)
	}

	var confirmed bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmed); err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return confirmed.BookingID, nil
}
