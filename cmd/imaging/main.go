package main

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/delivery/http/routers"
	"medflow-service/internal/app/drivers/database"
	"medflow-service/internal/app/drivers/logger"
	"medflow-service/internal/app/drivers/messaging"
	"medflow-service/internal/app/drivers/storage"
	"medflow-service/internal/app/services/clients"
	"medflow-service/internal/app/services/imaging"
	"medflow-service/internal/app/services/platform"
	"medflow-service/internal/app/services/shared/notifier"
	sharedstorage "medflow-service/internal/app/services/shared/storage"
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
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapImaging(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.Services.ImagingPort,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	logrus.Printf("Imaging service listening on %s", internalConfig.Services.ImagingPort)

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

func bootstrapImaging(bootstrap config.Bootstrap) {
	// Middlewares, no session service because every route here is internal
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, nil, bootstrap.InternalConfig)

	// Object storage
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := minioStorage.EnsureBucket(bucketCtx, bootstrap.InternalConfig.Minio.BucketName)
	if err != nil {
		logrus.Fatalf("Error ensuring bucket %s: %v", bootstrap.InternalConfig.Minio.BucketName, err)
	}

	// Review queue
	reviewNotifier, err := notifier.NewRabbitMQReviewNotifier(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.ReviewQueue,
	)
	if err != nil {
		logrus.Fatalf("Error declaring review queue: %v", err)
	}

	// AI client used to classify stored images
	aiClient := clients.NewAIClient(bootstrap.InternalConfig.Services.AIBaseUrl, bootstrap.Logger)

	// Imaging
	medicalImageMongoRepository := imaging.NewMedicalImageMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	imagingUsecase := imaging.NewImagingUsecase(
		medicalImageMongoRepository,
		minioStorage,
		aiClient,
		reviewNotifier,
		bootstrap.Logger,
		bootstrap.InternalConfig,
	)
	imagingController := imaging.NewImagingController(bootstrap.Logger, imagingUsecase, bootstrap.InternalConfig)

	// Platform
	platformController := platform.NewPlatformController(bootstrap.Logger, nil, constvars.ServiceNameImaging, bootstrap.InternalConfig)

	routers.SetupImagingRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		platformController,
		imagingController,
	)
}
