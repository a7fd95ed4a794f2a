package orchestrator

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/service"
)

// CustomerOrchestrator runs the customer-channel flows that must first
// prove the caller holds an Active registration for the vehicle they
// are addressing. The gate is evaluated per call; nothing is cached.
type CustomerOrchestrator struct {
	registrations service.RegistrationService
	vehicles      service.VehicleService
	events        service.EventService
	appointments  service.AppointmentService
	messages      service.MessageService
	logger        *zerolog.Logger
}

func NewCustomerOrchestrator(
	registrations service.RegistrationService,
	vehicles service.VehicleService,
	events service.EventService,
	appointments service.AppointmentService,
	messages service.MessageService,
	logger *zerolog.Logger,
) *CustomerOrchestrator {
	return &CustomerOrchestrator{
		registrations: registrations,
		vehicles:      vehicles,
		events:        events,
		appointments:  appointments,
		messages:      messages,
		logger:        logger,
	}
}

// registered reports whether username holds an Active registration for
// vin. A missing registration and one in any other lifecycle status are
// both "not registered".
func (o *CustomerOrchestrator) registered(ctx context.Context, username, vin string) (bool, error) {
	registration, err := o.registrations.GetRegistration(ctx, username, vin)
	if err != nil {
		return false, errors.Wrap(err, "check registration")
	}
	return registration != nil && registration.Status == domain.RegistrationStatusActive, nil
}

// GetVehicle returns the vehicle only when the caller is actively
// registered to it. An unregistered caller gets nil, indistinguishable
// from a vehicle that does not exist.
func (o *CustomerOrchestrator) GetVehicle(ctx context.Context, username, vin string) (*domain.Vehicle, error) {
	ok, err := o.registered(ctx, username, vin)
	if err != nil || !ok {
		return nil, err
	}
	return o.vehicles.GetVehicle(ctx, vin)
}

// GetEvents returns the vehicle's events only when the caller is
// actively registered to it. An unregistered caller gets the empty
// list, indistinguishable from a vehicle with no events.
func (o *CustomerOrchestrator) GetEvents(ctx context.Context, username, vin string) ([]domain.Event, error) {
	ok, err := o.registered(ctx, username, vin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Event{}, nil
	}
	return o.events.GetEvents(ctx, vin)
}

// CreateAppointment books the appointment and notifies downstream
// consumers. The empty id with a nil error means the caller holds no
// Active registration for the vehicle and nothing was booked.
func (o *CustomerOrchestrator) CreateAppointment(ctx context.Context, appointment *domain.Appointment) (string, error) {
	key := appointment.RegistrationKey
	ok, err := o.registered(ctx, key.Username, key.VIN)
	if err != nil {
		return "", err
	}
	if !ok {
		o.logger.Warn().
			Str("username", key.Username).
			Str("vin", key.VIN).
			Msg("appointment refused: no active registration")
		return "", nil
	}

	appointmentID, err := o.appointments.CreateAppointment(ctx, appointment)
	if err != nil {
		return "", errors.Wrap(err, "create appointment")
	}

	subject := "Service appointment confirmed"
	message := fmt.Sprintf("Appointment %s booked for vehicle %s at dealer %s on %s.",
		appointmentID, key.VIN, appointment.DealerID, appointment.ServiceDateHour)
	if err := o.messages.Publish(ctx, subject, message); err != nil {
		return "", errors.Wrap(err, "publish appointment notification")
	}
	return appointmentID, nil
}
