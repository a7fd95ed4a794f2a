package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetlink/connectedcar/internal/config"
	"github.com/fleetlink/connectedcar/internal/handler"
	"github.com/fleetlink/connectedcar/internal/logger"
	"github.com/fleetlink/connectedcar/internal/middleware"
	"github.com/fleetlink/connectedcar/internal/orchestrator"
	"github.com/fleetlink/connectedcar/internal/router"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
	"github.com/fleetlink/connectedcar/internal/service/remote"
)

func main() {
	fallbackLog := zerolog.New(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		fallbackLog.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		fallbackLog.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	log := logger.New(cfg, loggerService)

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services := buildServices(cfg, log)

	adminOrchestrator := orchestrator.NewAdminOrchestrator(services.User, services.Customer, log)
	customerOrchestrator := orchestrator.NewCustomerOrchestrator(
		services.Registration,
		services.Vehicle,
		services.Event,
		services.Appointment,
		services.Message,
		log,
	)

	handlers := handler.NewHandlers(srv, services, adminOrchestrator, customerOrchestrator)
	middlewares := middleware.NewMiddlewares(srv, handlers.Authorizer)

	e := router.New(handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// buildServices wires one HTTP client per platform service and exposes
// them through the port container.
func buildServices(cfg *config.Config, log *zerolog.Logger) *service.Services {
	timeout := cfg.Services.Timeout

	dealer := remote.NewClient(cfg.Services.DealerURL, timeout, log)
	customer := remote.NewClient(cfg.Services.CustomerURL, timeout, log)
	vehicle := remote.NewClient(cfg.Services.VehicleURL, timeout, log)
	appointment := remote.NewClient(cfg.Services.AppointmentURL, timeout, log)
	identity := remote.NewClient(cfg.Services.IdentityURL, timeout, log)
	message := remote.NewClient(cfg.Services.MessageURL, timeout, log)

	return &service.Services{
		Dealer:       remote.NewDealerClient(dealer),
		Timeslot:     remote.NewTimeslotClient(dealer),
		Customer:     remote.NewCustomerClient(customer),
		Registration: remote.NewRegistrationClient(customer),
		Vehicle:      remote.NewVehicleClient(vehicle),
		Event:        remote.NewEventClient(vehicle),
		Appointment:  remote.NewAppointmentClient(appointment),
		User:         remote.NewUserClient(identity),
		Message:      remote.NewMessageClient(message),
	}
}
