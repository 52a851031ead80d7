package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"patientbridge-service/internal/app/config"
	"patientbridge-service/internal/app/delivery/http/controllers"
	"patientbridge-service/internal/app/delivery/http/middlewares"
	"patientbridge-service/internal/app/delivery/http/routers"
	"patientbridge-service/internal/app/drivers/logger"
	corePatients "patientbridge-service/internal/app/services/core/patients"
	fhirPatients "patientbridge-service/internal/app/services/fhir_spark/patients"
	"patientbridge-service/internal/app/services/shared/fhirschema"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitProcessLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Patient bridge service listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.InternalConfig, bootstrap.Logger)

	// Schema gate, loaded once and shared read-only for the process lifetime
	schemaValidator, err := fhirschema.NewFhirSchemaValidator(bootstrap.InternalConfig.FHIR.SchemaPath, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to load FHIR schema: %v", err)
	}

	// Patient
	patientFhirClient := fhirPatients.NewPatientFhirClient(bootstrap.InternalConfig, bootstrap.Logger)
	patientUsecase := corePatients.NewPatientUsecase(patientFhirClient, schemaValidator)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController)
}
