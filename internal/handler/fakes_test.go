package handler

import (
	"context"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/service"
)

// Hand-rolled fakes with overridable function fields. A nil field
// behaves like an empty backend: lookups miss, writes succeed.

type fakeDealerService struct {
	createDealer func(ctx context.Context, dealer *domain.Dealer) (string, error)
	getDealers   func(ctx context.Context, stateCode domain.StateCode) ([]domain.Dealer, error)
	getDealer    func(ctx context.Context, dealerID string) (*domain.Dealer, error)
}

func (f *fakeDealerService) CreateDealer(ctx context.Context, dealer *domain.Dealer) (string, error) {
	if f.createDealer == nil {
		return "", nil
	}
	return f.createDealer(ctx, dealer)
}

func (f *fakeDealerService) GetDealers(ctx context.Context, stateCode domain.StateCode) ([]domain.Dealer, error) {
	if f.getDealers == nil {
		return nil, nil
	}
	return f.getDealers(ctx, stateCode)
}

func (f *fakeDealerService) GetDealer(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	if f.getDealer == nil {
		return nil, nil
	}
	return f.getDealer(ctx, dealerID)
}

type fakeTimeslotService struct {
	createTimeslot func(ctx context.Context, timeslot *domain.Timeslot) error
	getTimeslots   func(ctx context.Context, dealerID, startDate, endDate string) ([]domain.Timeslot, error)
	getTimeslot    func(ctx context.Context, dealerID, serviceDateHour string) (*domain.Timeslot, error)
}

func (f *fakeTimeslotService) CreateTimeslot(ctx context.Context, timeslot *domain.Timeslot) error {
	if f.createTimeslot == nil {
		return nil
	}
	return f.createTimeslot(ctx, timeslot)
}

func (f *fakeTimeslotService) GetTimeslots(ctx context.Context, dealerID, startDate, endDate string) ([]domain.Timeslot, error) {
	if f.getTimeslots == nil {
		return nil, nil
	}
	return f.getTimeslots(ctx, dealerID, startDate, endDate)
}

func (f *fakeTimeslotService) GetTimeslot(ctx context.Context, dealerID, serviceDateHour string) (*domain.Timeslot, error) {
	if f.getTimeslot == nil {
		return nil, nil
	}
	return f.getTimeslot(ctx, dealerID, serviceDateHour)
}

type fakeCustomerService struct {
	createCustomer func(ctx context.Context, customer *domain.Customer) error
	getCustomers   func(ctx context.Context, lastname string) ([]domain.Customer, error)
	getCustomer    func(ctx context.Context, username string) (*domain.Customer, error)
	updateCustomer func(ctx context.Context, patch *domain.CustomerPatch) error
}

func (f *fakeCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if f.createCustomer == nil {
		return nil
	}
	return f.createCustomer(ctx, customer)
}

func (f *fakeCustomerService) GetCustomers(ctx context.Context, lastname string) ([]domain.Customer, error) {
	if f.getCustomers == nil {
		return nil, nil
	}
	return f.getCustomers(ctx, lastname)
}

func (f *fakeCustomerService) GetCustomer(ctx context.Context, username string) (*domain.Customer, error) {
	if f.getCustomer == nil {
		return nil, nil
	}
	return f.getCustomer(ctx, username)
}

func (f *fakeCustomerService) UpdateCustomer(ctx context.Context, patch *domain.CustomerPatch) error {
	if f.updateCustomer == nil {
		return nil
	}
	return f.updateCustomer(ctx, patch)
}

type fakeRegistrationService struct {
	createRegistration       func(ctx context.Context, registration *domain.Registration) error
	updateRegistration       func(ctx context.Context, patch *domain.RegistrationPatch) error
	getCustomerRegistrations func(ctx context.Context, username string) ([]domain.Registration, error)
	getVehicleRegistrations  func(ctx context.Context, vin string) ([]domain.Registration, error)
	getRegistration          func(ctx context.Context, username, vin string) (*domain.Registration, error)
}

func (f *fakeRegistrationService) CreateRegistration(ctx context.Context, registration *domain.Registration) error {
	if f.createRegistration == nil {
		return nil
	}
	return f.createRegistration(ctx, registration)
}

func (f *fakeRegistrationService) UpdateRegistration(ctx context.Context, patch *domain.RegistrationPatch) error {
	if f.updateRegistration == nil {
		return nil
	}
	return f.updateRegistration(ctx, patch)
}

func (f *fakeRegistrationService) GetCustomerRegistrations(ctx context.Context, username string) ([]domain.Registration, error) {
	if f.getCustomerRegistrations == nil {
		return nil, nil
	}
	return f.getCustomerRegistrations(ctx, username)
}

func (f *fakeRegistrationService) GetVehicleRegistrations(ctx context.Context, vin string) ([]domain.Registration, error) {
	if f.getVehicleRegistrations == nil {
		return nil, nil
	}
	return f.getVehicleRegistrations(ctx, vin)
}

func (f *fakeRegistrationService) GetRegistration(ctx context.Context, username, vin string) (*domain.Registration, error) {
	if f.getRegistration == nil {
		return nil, nil
	}
	return f.getRegistration(ctx, username, vin)
}

type fakeVehicleService struct {
	createVehicle func(ctx context.Context, vehicle *domain.Vehicle) error
	getVehicle    func(ctx context.Context, vin string) (*domain.Vehicle, error)
	validatePin   func(ctx context.Context, vin, pin string) (bool, error)
}

func (f *fakeVehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if f.createVehicle == nil {
		return nil
	}
	return f.createVehicle(ctx, vehicle)
}

func (f *fakeVehicleService) GetVehicle(ctx context.Context, vin string) (*domain.Vehicle, error) {
	if f.getVehicle == nil {
		return nil, nil
	}
	return f.getVehicle(ctx, vin)
}

func (f *fakeVehicleService) ValidatePin(ctx context.Context, vin, pin string) (bool, error) {
	if f.validatePin == nil {
		return false, nil
	}
	return f.validatePin(ctx, vin, pin)
}

type fakeEventService struct {
	createEvent func(ctx context.Context, event *domain.Event) error
	getEvents   func(ctx context.Context, vin string) ([]domain.Event, error)
	getEvent    func(ctx context.Context, vin string, timestamp int64) (*domain.Event, error)
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if f.createEvent == nil {
		return nil
	}
	return f.createEvent(ctx, event)
}

func (f *fakeEventService) GetEvents(ctx context.Context, vin string) ([]domain.Event, error) {
	if f.getEvents == nil {
		return nil, nil
	}
	return f.getEvents(ctx, vin)
}

func (f *fakeEventService) GetEvent(ctx context.Context, vin string, timestamp int64) (*domain.Event, error) {
	if f.getEvent == nil {
		return nil, nil
	}
	return f.getEvent(ctx, vin, timestamp)
}

type fakeAppointmentService struct {
	createAppointment           func(ctx context.Context, appointment *domain.Appointment) (string, error)
	getAppointment              func(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	deleteAppointment           func(ctx context.Context, appointmentID string) error
	getRegistrationAppointments func(ctx context.Context, key *domain.RegistrationKey) ([]domain.Appointment, error)
}

func (f *fakeAppointmentService) CreateAppointment(ctx context.Context, appointment *domain.Appointment) (string, error) {
	if f.createAppointment == nil {
		return "", nil
	}
	return f.createAppointment(ctx, appointment)
}

func (f *fakeAppointmentService) GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	if f.getAppointment == nil {
		return nil, nil
	}
	return f.getAppointment(ctx, appointmentID)
}

func (f *fakeAppointmentService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if f.deleteAppointment == nil {
		return nil
	}
	return f.deleteAppointment(ctx, appointmentID)
}

func (f *fakeAppointmentService) GetRegistrationAppointments(ctx context.Context, key *domain.RegistrationKey) ([]domain.Appointment, error) {
	if f.getRegistrationAppointments == nil {
		return nil, nil
	}
	return f.getRegistrationAppointments(ctx, key)
}

type fakeUserService struct {
	createUser func(ctx context.Context, username, temporaryPassword string) error
}

func (f *fakeUserService) CreateUser(ctx context.Context, username, temporaryPassword string) error {
	if f.createUser == nil {
		return nil
	}
	return f.createUser(ctx, username, temporaryPassword)
}

type fakeMessageService struct {
	publish func(ctx context.Context, subject, message string) error
}

func (f *fakeMessageService) Publish(ctx context.Context, subject, message string) error {
	if f.publish == nil {
		return nil
	}
	return f.publish(ctx, subject, message)
}

// newFakeServices bundles fresh fakes into the port container.
func newFakeServices() (*service.Services, *fakes) {
	f := &fakes{
		dealer:       &fakeDealerService{},
		timeslot:     &fakeTimeslotService{},
		customer:     &fakeCustomerService{},
		registration: &fakeRegistrationService{},
		vehicle:      &fakeVehicleService{},
		event:        &fakeEventService{},
		appointment:  &fakeAppointmentService{},
		user:         &fakeUserService{},
		message:      &fakeMessageService{},
	}
	return &service.Services{
		Dealer:       f.dealer,
		Timeslot:     f.timeslot,
		Customer:     f.customer,
		Registration: f.registration,
		Vehicle:      f.vehicle,
		Event:        f.event,
		Appointment:  f.appointment,
		User:         f.user,
		Message:      f.message,
	}, f
}

type fakes struct {
	dealer       *fakeDealerService
	timeslot     *fakeTimeslotService
	customer     *fakeCustomerService
	registration *fakeRegistrationService
	vehicle      *fakeVehicleService
	event        *fakeEventService
	appointment  *fakeAppointmentService
	user         *fakeUserService
	message      *fakeMessageService
}
