package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Behnamfe76/aftersales-ops/internal/api/http"
	"github.com/Behnamfe76/aftersales-ops/internal/api/http/handlers"
	"github.com/Behnamfe76/aftersales-ops/internal/config"
	"github.com/Behnamfe76/aftersales-ops/internal/events"
	"github.com/Behnamfe76/aftersales-ops/internal/observability"
	"github.com/Behnamfe76/aftersales-ops/internal/persistence"
	"github.com/Behnamfe76/aftersales-ops/internal/repository"
	"github.com/Behnamfe76/aftersales-ops/internal/service"
	"github.com/Behnamfe76/aftersales-ops/internal/worker"
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

	store := repository.NewDocumentStore(pg.PoolHandle())
	ticketRepo := repository.NewTicketRepository(store, redis, cfg.Reports.TicketCacheTTL(), logger)
	settingsRepo := repository.NewSettingsRepository(store)
	mappingRepo := repository.NewStatusMappingRepository(store)
	libraryRepo := repository.NewLibraryRepository(store)
	objectStore := persistence.NewObjectStore(redis, cfg.Storage.PublicBaseURL)

	dispatcher := events.NewInMemoryDispatcher()

	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		TicketRepo:   ticketRepo,
		SettingsRepo: settingsRepo,
		MappingRepo:  mappingRepo,
		Dispatcher:   dispatcher,
		Reports:      cfg.Reports,
		Logger:       logger,
	})
	settingsService := service.NewSettingsService(settingsRepo, dispatcher, logger)
	mappingService := service.NewStatusMappingService(mappingRepo, dispatcher)
	libraryService := service.NewLibraryService(libraryRepo, objectStore, cfg.Storage.MaxUploadMB)
	exportService := service.NewExportService()

	refreshWorker, err := worker.StartRefreshWorker(cfg.Refresh, dashboardService, logger)
	if err != nil {
		logger.Fatal("failed to start refresh worker", zap.Error(err))
	}
	defer refreshWorker.Stop()

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Storage.MaxUploadMB * 1024 * 1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(pg, redis),
		Dashboard:     handlers.NewDashboardHandler(dashboardService, exportService),
		Settings:      handlers.NewSettingsHandler(settingsService),
		StatusMapping: handlers.NewStatusMappingHandler(mappingService),
		Library:       handlers.NewLibraryHandler(libraryService),
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
