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
	"github.com/spec-kit/booking-platform/internal/auth"
	"github.com/spec-kit/booking-platform/internal/config"
	"github.com/spec-kit/booking-platform/internal/events"
	"github.com/spec-kit/booking-platform/internal/gateway"
	"github.com/spec-kit/booking-platform/internal/observability"
	"github.com/spec-kit/booking-platform/internal/persistence"
	"github.com/spec-kit/booking-platform/internal/repository"
	"github.com/spec-kit/booking-platform/internal/service"
	"github.com/spec-kit/booking-platform/internal/worker"
)

func main() {
	cfg, err := config.Load("userapi")
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	accountRepo := repository.NewAccountRepository(pg.PoolHandle())
	bookingClient := gateway.NewBookingClient(cfg.Gateways)
	eventsClient := gateway.NewEventsClient(cfg.Gateways, redis)

	accountService := service.NewAccountService(*cfg, service.AccountDependencies{
		AccountRepo: accountRepo,
		Dispatcher:  dispatcher,
	})
	bookingService := service.NewBookingService(service.BookingDependencies{
		AccountRepo:   accountRepo,
		BookingClient: bookingClient,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	webhookService := service.NewWebhookService(dispatcher, logger, cfg.Webhook)
	worker.StartWebhookWorker(webhookService)

	authMiddleware := auth.NewAuthMiddleware(accountService.TokenManager(), accountRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, *cfg)

	httptransport.RegisterUserRoutes(app, httptransport.UserRouteConfig{
		Health:         handlers.NewHealthHandler(),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Bookings:       handlers.NewBookingsHandler(bookingService, eventsClient),
		AuthMiddleware: authMiddleware,
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
