package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-platform/internal/api/http/handlers"
	"github.com/spec-kit/booking-platform/internal/auth"
)

// UserRouteConfig bundles dependencies for the user service routes.
type UserRouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Bookings       *handlers.BookingsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterUserRoutes wires the user service HTTP routes.
func RegisterUserRoutes(app *fiber.App, cfg UserRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Accounts.Root)
	app.Post("/login/", cfg.Accounts.Login)

	app.Get("/users/", cfg.Accounts.List)
	app.Post("/users/", cfg.Accounts.Create)
	app.Get("/users/me", cfg.AuthMiddleware.Handle, cfg.Accounts.Me)
	app.Get("/users/events/", cfg.Bookings.ListEvents)
	app.Post("/users/bookings/", cfg.Bookings.Create)
}

// NotificationRouteConfig bundles dependencies for the notifier routes.
type NotificationRouteConfig struct {
	Health        *handlers.HealthHandler
	Notifications *handlers.NotificationsHandler
}

// RegisterNotificationRoutes wires the notification service HTTP routes.
func RegisterNotificationRoutes(app *fiber.App, cfg NotificationRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/notifications", cfg.Notifications.Create)
	app.Delete("/notifications/delete/:booking_id", cfg.Notifications.DeleteByBooking)
	app.Get("/notifications/:user_id/count", cfg.Notifications.CountByUser)
	app.Get("/notifications/:user_id", cfg.Notifications.ListByUser)
}
