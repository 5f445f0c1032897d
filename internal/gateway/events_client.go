package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/spec-kit/booking-platform/internal/config"
	"github.com/spec-kit/booking-platform/internal/persistence"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

const eventsCacheKey = "events:listing"

// EventsClient proxies the events service listing.
type EventsClient interface {
	ListEvents(ctx context.Context) (json.RawMessage, error)
}

type eventsClient struct {
	url      string
	client   *http.Client
	cache    *persistence.Redis
	cacheTTL time.Duration
}

// NewEventsClient builds the passthrough client. The Redis cache is
// advisory; pass nil to disable caching.
func NewEventsClient(cfg config.GatewayConfig, cache *persistence.Redis) EventsClient {
	return &eventsClient{
		url:      cfg.EventsURL,
		client:   &http.Client{Timeout: cfg.Timeout()},
		cache:    cache,
		cacheTTL: cfg.EventsCacheTTL(),
	}
}

// ListEvents returns the upstream JSON body verbatim. Listings are
// read-only external data, so a short-TTL cached copy is acceptable.
func (c *eventsClient) ListEvents(ctx context.Context) (json.RawMessage, error) {
	if cached, ok := c.cache.GetBytes(ctx, eventsCacheKey); ok {
		return json.RawMessage(cached), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewGatewayUnreachable("events", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.NewUpstreamError("events", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	c.cache.SetBytes(ctx, eventsCacheKey, body, c.cacheTTL)
	return json.RawMessage(body), nil
}
