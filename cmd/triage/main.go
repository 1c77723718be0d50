package main

import (
	"context"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/delivery/http/routers"
	"medflow-service/internal/app/drivers/logger"
	"medflow-service/internal/app/services/clients"
	"medflow-service/internal/app/services/platform"
	"medflow-service/internal/app/services/triage"
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

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTriage(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.Services.TriagePort,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	logrus.Printf("Triage service listening on %s", internalConfig.Services.TriagePort)

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

func bootstrapTriage(bootstrap config.Bootstrap) {
	// Middlewares, no session service because every route here is internal
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, nil, bootstrap.InternalConfig)

	// AI client used to score incoming cases
	aiClient := clients.NewAIClient(bootstrap.InternalConfig.Services.AIBaseUrl, bootstrap.Logger)

	// Triage
	triageUsecase := triage.NewTriageUsecase(aiClient, bootstrap.InternalConfig)
	triageController := triage.NewTriageController(bootstrap.Logger, triageUsecase)

	// Platform
	platformController := platform.NewPlatformController(bootstrap.Logger, nil, constvars.ServiceNameTriage, bootstrap.InternalConfig)

	routers.SetupTriageRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		platformController,
		triageController,
	)
}
