package main

// @title Tourism Directory API
// @version 1.0.0
// @description Каталог туристических заведений и планировщик маршрутов.
// @description
// @description Основные возможности:
// @description - Поиск заведений по ключевому слову, категории, цене, рейтингу и радиусу
// @description - Заявки владельцев на управление заведениями
// @description - Маршруты по дням с автоматическим обновлением updatedAt
// @description - Пешие маршруты дня через Mapbox Matrix API

// @contact.name API Support
// @contact.email support@tourism-directory.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/tourism-directory/docs"
	"github.com/tourism-directory/internal/config"
	httpDelivery "github.com/tourism-directory/internal/delivery/http"
	"github.com/tourism-directory/internal/delivery/http/handler"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/infrastructure/mapbox"
	"github.com/tourism-directory/internal/pkg/logger"
	"github.com/tourism-directory/internal/repository/cache"
	"github.com/tourism-directory/internal/repository/postgres"
	"github.com/tourism-directory/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tourism Directory API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("mapbox_enabled", cfg.MapboxEnabled()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis. Кеш не обязателен: без него категории читаются из базы
	checks := map[string]usecase.HealthChecker{"postgres": db}
	var cacheRepo repository.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, category cache disabled", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
		checks["redis"] = redisClient
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		cancel()
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	cancel()

	// 5. Initialize repositories
	tx := postgres.NewTransactor(db)
	businessRepo := postgres.NewBusinessRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	userRepo := postgres.NewUserRepository(db)
	claimRepo := postgres.NewClaimRepository(db)
	itineraryRepo := postgres.NewItineraryRepository(db)
	dayRepo := postgres.NewItineraryDayRepository(db)
	itemRepo := postgres.NewItineraryItemRepository(db)
	collaboratorRepo := postgres.NewCollaboratorRepository(db)
	bookingRepo := postgres.NewTransportBookingRepository(db)

	var routingRepo repository.RoutingRepository
	if cfg.MapboxEnabled() {
		routingRepo = mapbox.NewMapboxClient(&cfg.Mapbox, log)
	}

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	healthUC := usecase.NewHealthUseCase(checks, log)
	businessUC := usecase.NewBusinessUseCase(tx, businessRepo, categoryRepo, userRepo, log, nil)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, cacheRepo, cfg.Cache.CategoriesCacheTTL, log)
	userUC := usecase.NewUserUseCase(userRepo, log, nil)
	claimUC := usecase.NewClaimUseCase(tx, claimRepo, businessRepo, userRepo, log, nil)
	itineraryUC := usecase.NewItineraryUseCase(
		tx,
		itineraryRepo,
		dayRepo,
		itemRepo,
		collaboratorRepo,
		bookingRepo,
		businessRepo,
		userRepo,
		log,
		nil,
	)
	routeUC := usecase.NewRouteUseCase(dayRepo, itemRepo, businessRepo, routingRepo, log)
	bookingUC := usecase.NewTransportBookingUseCase(tx, bookingRepo, itineraryRepo, userRepo, log, nil)
	seedUC := usecase.NewSeedUseCase(tx, categoryRepo, businessRepo, userRepo, itineraryRepo, dayRepo, itemRepo, log, nil)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers and server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Health:           handler.NewHealthHandler(healthUC, log),
		Business:         handler.NewBusinessHandler(businessUC, cfg.Search.DefaultRadiusKm, log),
		Category:         handler.NewCategoryHandler(categoryUC, log),
		User:             handler.NewUserHandler(userUC, log),
		Claim:            handler.NewClaimHandler(claimUC, log),
		Itinerary:        handler.NewItineraryHandler(itineraryUC, routeUC, log),
		TransportBooking: handler.NewTransportBookingHandler(bookingUC, log),
		Seed:             handler.NewSeedHandler(seedUC, log),
	})

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
