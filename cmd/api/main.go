package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/greentrip/greentrip/internal/pkg/config"
	"github.com/greentrip/greentrip/internal/pkg/database"
	"github.com/greentrip/greentrip/internal/pkg/health"
	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/middleware"
	nsqpkg "github.com/greentrip/greentrip/internal/pkg/nsq"
	"github.com/greentrip/greentrip/internal/pkg/server"
	"github.com/greentrip/greentrip/services/emissions/calculator"
	emissionsHandler "github.com/greentrip/greentrip/services/emissions/handler"
	emissionsRepo "github.com/greentrip/greentrip/services/emissions/repository"
	emissionsUsecase "github.com/greentrip/greentrip/services/emissions/usecase"
	flightsGateway "github.com/greentrip/greentrip/services/flights/gateway"
	flightsHandler "github.com/greentrip/greentrip/services/flights/handler"
	"github.com/greentrip/greentrip/services/flights/provider"
	flightsRepo "github.com/greentrip/greentrip/services/flights/repository"
	flightsUsecase "github.com/greentrip/greentrip/services/flights/usecase"
	usersGateway "github.com/greentrip/greentrip/services/users/gateway"
	usersHandler "github.com/greentrip/greentrip/services/users/handler"
	usersRepo "github.com/greentrip/greentrip/services/users/repository"
	usersUsecase "github.com/greentrip/greentrip/services/users/usecase"
)

func main() {
	appName := "greentrip-api"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	defer producer.Stop()

	// Initialize repositories
	db := postgresClient.GetDB()
	userRepository := usersRepo.NewUserRepository(configs, db)
	bookingRepository := flightsRepo.NewBookingRepository(configs, db)
	historyRepository := emissionsRepo.NewBookingHistoryRepository(configs, db)
	flightProvider := provider.NewStaticProvider()

	// Initialize gateways
	userGW := usersGateway.NewUserGW(configs, producer)
	flightGW := flightsGateway.NewFlightGW(configs, producer)

	// Initialize use cases. The emissions use case doubles as the report
	// cache invalidator for the flights use case, so bookings made or
	// cancelled immediately show up in fresh summaries.
	calc := calculator.New()
	userUC := usersUsecase.NewUserUC(configs, userRepository, userGW)
	emissionsUC := emissionsUsecase.NewEmissionsUC(
		configs, calc, historyRepository, userRepository, flightProvider, redisClient)
	flightUC := flightsUsecase.NewFlightUC(
		configs, flightProvider, bookingRepository, flightGW, calc, emissionsUC)

	// Initialize handlers
	client := redisClient.GetClient()
	usersH := usersHandler.NewHandler(userUC, configs, client)
	flightsH := flightsHandler.NewHandler(flightUC, configs, client)
	emissionsH := emissionsHandler.NewHandler(emissionsUC, configs, client)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthHandler := health.NewHandler(appName, configs.App.Version)
	healthHandler.AddCheck("postgres", func(ctx context.Context) error {
		return db.PingContext(ctx)
	})
	healthHandler.AddCheck("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	healthHandler.Register(e)

	usersH.RegisterRoutes(e)
	flightsH.RegisterRoutes(e)
	emissionsH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
