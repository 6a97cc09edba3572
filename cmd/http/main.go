package main

import (
	"clinicorp-proxy-service/internal/app/config"
	"clinicorp-proxy-service/internal/app/delivery/http/controllers"
	"clinicorp-proxy-service/internal/app/delivery/http/middlewares"
	"clinicorp-proxy-service/internal/app/delivery/http/routers"
	"clinicorp-proxy-service/internal/app/drivers/logger"
	clinicorpAppointments "clinicorp-proxy-service/internal/app/services/clinicorp/appointments"
	"clinicorp-proxy-service/internal/app/services/core/appointments"
	"clinicorp-proxy-service/internal/app/services/shared/credentials"
	"clinicorp-proxy-service/internal/pkg/constvars"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	if os.Getenv(constvars.ClinicorpTokenEnvKey) == "" {
		log.Warn("CLINICORP_TOKEN is not set, cancellations will fail until it is")
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server is starting",
			zap.String("port", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
			zap.String("clinicorp_url", internalConfig.Clinicorp.CancelAppointmentURL),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to flush logger", zap.Error(err))
	}
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Credentials
	tokenProvider := credentials.NewEnvTokenProvider()

	// Appointment
	appointmentClinicorpClient := clinicorpAppointments.NewAppointmentClinicorpClient(
		bootstrap.InternalConfig.Clinicorp.CancelAppointmentURL,
		bootstrap.InternalConfig.Clinicorp.RequestTimeout,
		bootstrap.Logger,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentClinicorpClient, tokenProvider, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Health
	healthController := controllers.NewHealthController()

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, healthController, appointmentController)
}
