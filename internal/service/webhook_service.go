package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/booking-platform/internal/config"
	"github.com/spec-kit/booking-platform/internal/events"
)

// WebhookService emits outbound notifications for domain events. Delivery
// is a stub; the subscription wiring and payload shapes are real.
type WebhookService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.WebhookConfig
}

// NewWebhookService creates the service.
func NewWebhookService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.WebhookConfig) *WebhookService {
	return &WebhookService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (w *WebhookService) RegisterHandlers() {
	if w.dispatcher == nil {
		return
	}
	w.dispatcher.Subscribe(events.EventAccountCreated, w.handleAccountCreated)
	w.dispatcher.Subscribe(events.EventBookingCreated, w.handleBookingCreated)
	w.dispatcher.Subscribe(events.EventDebitMismatch, w.handleDebitMismatch)
}

func (w *WebhookService) handleAccountCreated(ctx context.Context, event events.Event) error {
	w.logger.Info("AccountCreated", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	w.sendEmailNotificationStub(ctx, event)
	return nil
}

func (w *WebhookService) handleBookingCreated(ctx context.Context, event events.Event) error {
	w.logger.Info("BookingCreated", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	w.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (w *WebhookService) handleDebitMismatch(ctx context.Context, event events.Event) error {
	w.logger.Warn("DebitMismatch", zap.String("account_id", event.AccountID), zap.Any("payload", event.Payload))
	w.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (w *WebhookService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(w.cfg.EmailFrom) == "" {
		return
	}
	w.logger.Debug("sendEmailNotificationStub",
		zap.String("from", w.cfg.EmailFrom),
		zap.String("account_id", event.AccountID),
		zap.String("event_type", string(event.Type)))
}

func (w *WebhookService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(w.cfg.WebhookURL) == "" {
		return
	}
	w.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", w.cfg.WebhookURL),
		zap.String("account_id", event.AccountID),
		zap.String("event_type", string(event.Type)))
}
