package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/mrpavithran/WorkShop/internal/api/http"
	"github.com/mrpavithran/WorkShop/internal/api/http/handlers"
	"github.com/mrpavithran/WorkShop/internal/auth"
	"github.com/mrpavithran/WorkShop/internal/config"
	"github.com/mrpavithran/WorkShop/internal/events"
	"github.com/mrpavithran/WorkShop/internal/ledger"
	"github.com/mrpavithran/WorkShop/internal/observability"
	"github.com/mrpavithran/WorkShop/internal/service"
	"github.com/mrpavithran/WorkShop/internal/worker"
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

	store := ledger.NewStore()
	if cfg.Seed.DemoData {
		if err := ledger.SeedDemoData(store); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		logger.Info("seeded demo data")
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, store)
	workshopService := service.NewWorkshopService(service.WorkshopDependencies{
		Store:      store,
		Dispatcher: dispatcher,
	})
	registrationService := service.NewRegistrationService(service.RegistrationDependencies{
		Store:      store,
		Dispatcher: dispatcher,
	})
	profileService := service.NewProfileService(store)
	paymentService := service.NewPaymentService(registrationService, logger, cfg.Payment)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), store)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Workshops:      handlers.NewWorkshopsHandler(workshopService, paymentService, cfg.App.PublicOrigin),
		Creator:        handlers.NewCreatorHandler(workshopService, registrationService),
		Profile:        handlers.NewProfileHandler(profileService, registrationService, workshopService),
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
