package main

import (
	"context"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vaipaqueta/dispatch/internal/pkg/config"
	"github.com/vaipaqueta/dispatch/internal/pkg/database"
	"github.com/vaipaqueta/dispatch/internal/pkg/health"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/middleware"
	"github.com/vaipaqueta/dispatch/internal/pkg/nats"
	"github.com/vaipaqueta/dispatch/internal/pkg/server"
	locationGateway "github.com/vaipaqueta/dispatch/services/location/gateway"
	locationHandler "github.com/vaipaqueta/dispatch/services/location/handler"
	locationRepository "github.com/vaipaqueta/dispatch/services/location/repository"
	locationUsecase "github.com/vaipaqueta/dispatch/services/location/usecase"
	ridesGateway "github.com/vaipaqueta/dispatch/services/rides/gateway"
	ridesHandler "github.com/vaipaqueta/dispatch/services/rides/handler"
	ridesRepository "github.com/vaipaqueta/dispatch/services/rides/repository"
	ridesUsecase "github.com/vaipaqueta/dispatch/services/rides/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		os.Exit(1)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting dispatch service",
		logger.String("environment", cfg.App.Environment),
		logger.String("version", cfg.App.Version))

	// Infrastructure clients
	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer pgClient.Close()

	if err := pgClient.EnsureSchema(context.Background()); err != nil {
		zapLogger.Fatal("Failed to apply database schema", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(cfg.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := pgClient.GetDB()

	// Rides service
	rideRepo := ridesRepository.NewRideRepository(cfg, db)
	pingRepo := ridesRepository.NewPingRepository(db)
	profileRepo := ridesRepository.NewProfileRepository(db)
	rideGW := ridesGateway.NewRideGW(natsClient)
	rideUC := ridesUsecase.NewRideUC(cfg, rideRepo, pingRepo, profileRepo, rideGW, zapLogger)
	rideHandler := ridesHandler.NewRideHandler(rideUC)

	pingConsumer := ridesHandler.NewPingConsumer(rideUC, natsClient, zapLogger)
	if err := pingConsumer.Start(); err != nil {
		zapLogger.Fatal("Failed to start ping consumer", logger.Err(err))
	}

	// Location service
	locationRepo := locationRepository.NewLocationRepository(cfg, db, redisClient)
	locationGW := locationGateway.NewLocationGW(natsClient)
	locationUC := locationUsecase.NewLocationUC(cfg, locationRepo, rideRepo, profileRepo, locationGW, zapLogger)
	locHandler := locationHandler.NewLocationHandler(locationUC)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	rideHandler.RegisterRoutes(e, cfg.JWT)
	locHandler.RegisterRoutes(e, cfg.JWT)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(pgClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, cfg.App.Name, cfg.App.Version, healthService)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
