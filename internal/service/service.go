// Package service declares the ports through which the facade reaches
// the platform services that own the data. The facade composes these
// ports; it never owns storage itself.
//
// All lookups share one convention: (nil, nil) means the resource does
// not exist, and a non-nil error means the lookup itself failed. The
// two are never conflated.
package service

import (
	"context"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// DealerService manages dealer records and their jurisdiction index.
type DealerService interface {
	// CreateDealer stores a new dealer and returns its assigned id.
	CreateDealer(ctx context.Context, dealer *domain.Dealer) (string, error)
	// GetDealers lists dealers registered in one jurisdiction.
	GetDealers(ctx context.Context, stateCode domain.StateCode) ([]domain.Dealer, error)
	GetDealer(ctx context.Context, dealerID string) (*domain.Dealer, error)
}

// TimeslotService manages dealer service capacity by date-hour.
type TimeslotService interface {
	CreateTimeslot(ctx context.Context, timeslot *domain.Timeslot) error
	// GetTimeslots lists a dealer's timeslots between two dates given in
	// 2006-01-02 form, both inclusive.
	GetTimeslots(ctx context.Context, dealerID, startDate, endDate string) ([]domain.Timeslot, error)
	GetTimeslot(ctx context.Context, dealerID, serviceDateHour string) (*domain.Timeslot, error)
}

// CustomerService manages customer profiles keyed by username.
type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	// GetCustomers lists customers matching a last name exactly.
	GetCustomers(ctx context.Context, lastname string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, username string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, patch *domain.CustomerPatch) error
}

// RegistrationService manages the customer-vehicle association and its
// lifecycle status.
type RegistrationService interface {
	CreateRegistration(ctx context.Context, registration *domain.Registration) error
	UpdateRegistration(ctx context.Context, patch *domain.RegistrationPatch) error
	GetCustomerRegistrations(ctx context.Context, username string) ([]domain.Registration, error)
	GetVehicleRegistrations(ctx context.Context, vin string) ([]domain.Registration, error)
	GetRegistration(ctx context.Context, username, vin string) (*domain.Registration, error)
}

// VehicleService manages vehicle records and holds the credential used
// by the vehicle channel.
type VehicleService interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, vin string) (*domain.Vehicle, error)
	// ValidatePin checks the vehicle channel credential. False covers
	// both a wrong pin and an unknown vehicle.
	ValidatePin(ctx context.Context, vin, pin string) (bool, error)
}

// EventService manages the telemetry events reported by vehicles.
type EventService interface {
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvents(ctx context.Context, vin string) ([]domain.Event, error)
	GetEvent(ctx context.Context, vin string, timestamp int64) (*domain.Event, error)
}

// AppointmentService manages service appointments booked against dealer
// timeslots.
type AppointmentService interface {
	// CreateAppointment books an appointment and returns its assigned id.
	CreateAppointment(ctx context.Context, appointment *domain.Appointment) (string, error)
	GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	GetRegistrationAppointments(ctx context.Context, key *domain.RegistrationKey) ([]domain.Appointment, error)
}

// UserService provisions login accounts in the identity platform.
type UserService interface {
	CreateUser(ctx context.Context, username, temporaryPassword string) error
}

// MessageService publishes notifications to interested downstream
// consumers. A publish failure still fails the operation that
// requested it.
type MessageService interface {
	Publish(ctx context.Context, subject, message string) error
}

// Services bundles every port for injection into the orchestrators and
// handlers.
type Services struct {
	Dealer       DealerService
	Timeslot     TimeslotService
	Customer     CustomerService
	Registration RegistrationService
	Vehicle      VehicleService
	Event        EventService
	Appointment  AppointmentService
	User         UserService
	Message      MessageService
}
