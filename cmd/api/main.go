package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/restaurant-crm/internal/api/http"
	"github.com/spec-kit/restaurant-crm/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-crm/internal/auth"
	"github.com/spec-kit/restaurant-crm/internal/config"
	"github.com/spec-kit/restaurant-crm/internal/events"
	"github.com/spec-kit/restaurant-crm/internal/observability"
	"github.com/spec-kit/restaurant-crm/internal/persistence"
	"github.com/spec-kit/restaurant-crm/internal/repository"
	"github.com/spec-kit/restaurant-crm/internal/service"
	"github.com/spec-kit/restaurant-crm/internal/worker"
)

func main() {
	cfg, err := config.Load()
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	snapshotCache := persistence.NewSnapshotCache(redis, cfg.Cache.SnapshotTTL())

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	interactionRepo := repository.NewInteractionRepository(pool)
	potentialRepo := repository.NewPotentialOrderRepository(pool)
	callRepo := repository.NewScheduledCallRepository(pool)
	performanceRepo := repository.NewPerformanceRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, userRepo)
	leadService := service.NewLeadService(service.LeadDependencies{
		LeadRepo:   leadRepo,
		Cache:      snapshotCache,
		Dispatcher: dispatcher,
	})
	contactService := service.NewContactService(contactRepo)
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:  orderRepo,
		Cache:      snapshotCache,
		Dispatcher: dispatcher,
	})
	interactionService := service.NewInteractionService(service.InteractionDependencies{
		InteractionRepo: interactionRepo,
		OrderRepo:       orderRepo,
		LeadRepo:        leadRepo,
		Cache:           snapshotCache,
		Dispatcher:      dispatcher,
	})
	potentialService := service.NewPotentialOrderService(potentialRepo, snapshotCache)
	callService := service.NewCallService(service.CallDependencies{
		CallRepo:   callRepo,
		Cache:      snapshotCache,
		Dispatcher: dispatcher,
	})
	performanceService := service.NewPerformanceService(service.PerformanceDependencies{
		PerformanceRepo: performanceRepo,
		Cache:           snapshotCache,
		Logger:          logger,
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Leads:          handlers.NewLeadsHandler(leadService),
		Contacts:       handlers.NewContactsHandler(contactService),
		Orders:         handlers.NewOrdersHandler(orderService, potentialService),
		Interactions:   handlers.NewInteractionsHandler(interactionService),
		Calls:          handlers.NewCallsHandler(callService),
		Performance:    handlers.NewPerformanceHandler(performanceService),
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
