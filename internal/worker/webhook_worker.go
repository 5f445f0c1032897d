package worker

import (
	"github.com/spec-kit/booking-platform/internal/service"
)

// StartWebhookWorker registers webhook handlers.
func StartWebhookWorker(webhookService *service.WebhookService) {
	if webhookService == nil {
		return
	}
	webhookService.RegisterHandlers()
}
