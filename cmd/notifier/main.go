package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/booking-platform/internal/api/http"
	"github.com/spec-kit/booking-platform/internal/api/http/handlers"
	"github.com/spec-kit/booking-platform/internal/config"
	"github.com/spec-kit/booking-platform/internal/observability"
	"github.com/spec-kit/booking-platform/internal/persistence"
	"github.com/spec-kit/booking-platform/internal/repository"
	"github.com/spec-kit/booking-platform/internal/service"
)

func main() {
	cfg, err := config.Load("notifier")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()

	notificationRepo := repository.NewNotificationRepository(pg.PoolHandle())
	notificationService := service.NewNotificationService(notificationRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, *cfg)

	httptransport.RegisterNotificationRoutes(app, httptransport.NotificationRouteConfig{
		Health:        handlers.NewHealthHandler(),
		Notifications: handlers.NewNotificationsHandler(notificationService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
