package main

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/delivery/http/routers"
	"medflow-service/internal/app/drivers/database"
	"medflow-service/internal/app/drivers/logger"
	"medflow-service/internal/app/services/auth"
	"medflow-service/internal/app/services/clients"
	"medflow-service/internal/app/services/consultations"
	"medflow-service/internal/app/services/gateway"
	"medflow-service/internal/app/services/patients"
	"medflow-service/internal/app/services/platform"
	"medflow-service/internal/app/services/shared/redis"
	"medflow-service/internal/app/services/shared/sessions"
	"medflow-service/internal/app/services/users"
	"medflow-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapGateway(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.Services.GatewayPort,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	logrus.Printf("Gateway service listening on %s", internalConfig.Services.GatewayPort)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error while releasing resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapGateway(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Sessions
	sessionService := sessions.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Downstream clients
	triageClient := clients.NewTriageClient(bootstrap.InternalConfig.Services.TriageBaseUrl, bootstrap.Logger)
	imagingClient := clients.NewImagingClient(bootstrap.InternalConfig.Services.ImagingBaseUrl, bootstrap.Logger)
	healthClient := clients.NewHealthClient(bootstrap.Logger)

	// Users
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Patient profiles
	patientProfileMongoRepository := patients.NewPatientProfileMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	providerProfileMongoRepository := patients.NewProviderProfileMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientProfileMongoRepository, sessionService)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		patientProfileMongoRepository,
		providerProfileMongoRepository,
		sessionService,
		bootstrap.InternalConfig,
	)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Consultations
	consultationMongoRepository := consultations.NewConsultationMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	consultationUsecase := consultations.NewConsultationUsecase(
		consultationMongoRepository,
		patientProfileMongoRepository,
		sessionService,
		triageClient,
		bootstrap.Logger,
		bootstrap.InternalConfig,
	)
	consultationController := consultations.NewConsultationController(bootstrap.Logger, consultationUsecase)

	// Image upload forwarding
	imageForwardUsecase := gateway.NewImageForwardUsecase(imagingClient, sessionService, bootstrap.InternalConfig)
	imageForwardController := gateway.NewImageForwardController(bootstrap.Logger, imageForwardUsecase, bootstrap.InternalConfig)

	// Platform
	platformUsecase := platform.NewPlatformUsecase(healthClient, bootstrap.InternalConfig)
	platformController := platform.NewPlatformController(bootstrap.Logger, platformUsecase, constvars.ServiceNameGateway, bootstrap.InternalConfig)

	routers.SetupGatewayRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		platformController,
		authController,
		patientController,
		consultationController,
		imageForwardController,
	)
}
