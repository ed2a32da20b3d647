package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"screening-service/internal/app/config"
	"screening-service/internal/app/delivery/http/middlewares"
	"screening-service/internal/app/delivery/http/routers"
	"screening-service/internal/app/drivers/database"
	"screening-service/internal/app/drivers/logger"
	"screening-service/internal/app/drivers/messaging"
	"screening-service/internal/app/services/core/metadata"
	"screening-service/internal/app/services/core/screenings"
	"screening-service/internal/app/services/shared/locker"
	redisrepo "screening-service/internal/app/services/shared/redis"
	"screening-service/internal/app/services/shared/referral"
	"screening-service/internal/app/services/tracker"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Error closing application resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	referralPublisher, err := referral.NewReferralQueueService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("Error setting up referral queue", zap.Error(err))
	}

	// Middlewares
	accessLog := logger.NewLogrusLogger(bootstrap.InternalConfig)
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, accessLog, bootstrap.InternalConfig)

	// Tracker platform
	trackerClient := tracker.NewTrackerClient(
		bootstrap.InternalConfig.Tracker.BaseUrl,
		bootstrap.InternalConfig.Tracker.ApiToken,
		time.Duration(bootstrap.InternalConfig.Tracker.RequestTimeoutInSeconds)*time.Second,
		bootstrap.Logger,
	)

	// Metadata
	metadataUsecase := metadata.NewMetadataUsecase(trackerClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	metadataController := metadata.NewMetadataController(bootstrap.Logger, metadataUsecase)

	// Screenings
	syncAuditRepository := screenings.NewSyncAuditMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.InternalConfig.Screening.AuditCollection,
	)
	screeningUsecase := screenings.NewScreeningUsecase(
		trackerClient,
		metadataUsecase,
		lockService,
		redisRepository,
		syncAuditRepository,
		referralPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	screeningController := screenings.NewScreeningController(bootstrap.Logger, screeningUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, screeningController, metadataController)
}
