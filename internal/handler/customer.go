package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/orchestrator"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
)

// timeslotWindowDays is the lookahead applied when a customer browses
// dealer timeslots: today through today plus this many days.
const timeslotWindowDays = 30

const dateFormat = "2006-01-02"

// CustomerHandler serves the customer channel. The caller's identity
// comes exclusively from the verified username claim; any identifier in
// a request body that conflicts with it is overwritten. Vehicle-scoped
// operations go through the orchestrator, which checks the caller's
// registration before touching the vehicle's data.
type CustomerHandler struct {
	Handler
	services     *service.Services
	orchestrator *orchestrator.CustomerOrchestrator

	// now is the clock used for the default timeslot window.
	now func() time.Time
}

func NewCustomerHandler(s *server.Server, services *service.Services, o *orchestrator.CustomerOrchestrator) *CustomerHandler {
	return &CustomerHandler{
		Handler:      NewHandler(s),
		services:     services,
		orchestrator: o,
		now:          time.Now,
	}
}

// GetCustomer returns the caller's own profile.
func (h *CustomerHandler) GetCustomer(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}

	customer, err := h.services.Customer.GetCustomer(ctx, username)
	if err != nil {
		return gateway.Response{}, err
	}
	if customer == nil {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(customer)
}

// UpdateCustomer patches the caller's own profile. The username in the
// payload is always replaced with the caller's identity.
func (h *CustomerHandler) UpdateCustomer(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}

	var patch domain.CustomerPatch
	if err := h.codec.Decode(req.Body, &patch); err != nil {
		return gateway.Response{}, err
	}
	patch.Username = username

	if err := h.services.Customer.UpdateCustomer(ctx, &patch); err != nil {
		return gateway.Response{}, err
	}
	return gateway.StatusResponse(http.StatusOK), nil
}

// CreateAppointment books a service visit for one of the caller's
// vehicles. The orchestrator refuses the booking (empty id) when the
// caller holds no Active registration for the vehicle; that refusal is
// a 400, not an error.
func (h *CustomerHandler) CreateAppointment(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}

	var appointment domain.Appointment
	if err := h.codec.Decode(req.Body, &appointment); err != nil {
		return gateway.Response{}, err
	}
	appointment.RegistrationKey.Username = username

	appointmentID, err := h.orchestrator.CreateAppointment(ctx, &appointment)
	if err != nil {
		return gateway.Response{}, err
	}
	if appointmentID == "" {
		return gateway.StatusResponse(http.StatusBadRequest), nil
	}

	return gateway.CreatedResponse(fmt.Sprintf("/customer/appointments/%s", appointmentID)), nil
}

// GetAppointment returns one of the caller's appointments. An
// appointment that exists but belongs to someone else is reported as
// absent, so ownership cannot be probed.
func (h *CustomerHandler) GetAppointment(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}
	appointmentID, err := gateway.PathParam(req, gateway.PathAppointmentID)
	if err != nil {
		return gateway.Response{}, err
	}

	appointment, err := h.services.Appointment.GetAppointment(ctx, appointmentID)
	if err != nil {
		return gateway.Response{}, err
	}
	if appointment == nil || appointment.RegistrationKey.Username != username {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(appointment)
}

// DeleteAppointment cancels one of the caller's appointments. Unlike
// the read, a missing or foreign appointment is a 400 here: a delete
// that targets something the caller doesn't own is a bad request, not a
// lookup miss.
func (h *CustomerHandler) DeleteAppointment(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}
	appointmentID, err := gateway.PathParam(req, gateway.PathAppointmentID)
	if err != nil {
		return gateway.Response{}, err
	}

	appointment, err := h.services.Appointment.GetAppointment(ctx, appointmentID)
	if err != nil {
		return gateway.Response{}, err
	}
	if appointment == nil || appointment.RegistrationKey.Username != username {
		return gateway.StatusResponse(http.StatusBadRequest), nil
	}

	if err := h.services.Appointment.DeleteAppointment(ctx, appointmentID); err != nil {
		return gateway.Response{}, err
	}
	return gateway.StatusResponse(http.StatusOK), nil
}

// GetRegistrations lists the caller's vehicle registrations.
func (h *CustomerHandler) GetRegistrations(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}

	registrations, err := h.services.Registration.GetCustomerRegistrations(ctx, username)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, registrations)
}

// GetAppointments lists the caller's appointments for one vehicle.
func (h *CustomerHandler) GetAppointments(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}
	vin, err := gateway.PathParam(req, gateway.PathVin)
	if err != nil {
		return gateway.Response{}, err
	}

	key := domain.RegistrationKey{Username: username, VIN: vin}
	appointments, err := h.services.Appointment.GetRegistrationAppointments(ctx, &key)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, appointments)
}

// GetVehicle returns a vehicle the caller is actively registered to.
func (h *CustomerHandler) GetVehicle(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}
	vin, err := gateway.PathParam(req, gateway.PathVin)
	if err != nil {
		return gateway.Response{}, err
	}

	vehicle, err := h.orchestrator.GetVehicle(ctx, username, vin)
	if err != nil {
		return gateway.Response{}, err
	}
	if vehicle == nil {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(vehicle)
}

// GetEvents lists telemetry for a vehicle the caller is actively
// registered to. An unregistered caller gets the empty list shape of a
// vehicle with no events.
func (h *CustomerHandler) GetEvents(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.RequireUsername(req)
	if err != nil {
		return gateway.Response{}, err
	}
	vin, err := gateway.PathParam(req, gateway.PathVin)
	if err != nil {
		return gateway.Response{}, err
	}

	events, err := h.orchestrator.GetEvents(ctx, username, vin)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, events)
}

// GetDealers lists dealers in a jurisdiction, same shape as the admin
// listing.
func (h *CustomerHandler) GetDealers(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	stateCode, err := gateway.StateCode(req)
	if err != nil {
		return gateway.Response{}, err
	}

	dealers, err := h.services.Dealer.GetDealers(ctx, stateCode)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, dealers)
}

// GetTimeslots lists a dealer's bookable capacity over the standard
// customer-facing window: today through 30 days out. Customers don't
// get to pick the window.
func (h *CustomerHandler) GetTimeslots(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	dealerID, err := gateway.PathParam(req, gateway.PathDealerID)
	if err != nil {
		return gateway.Response{}, err
	}

	startDate := h.now().Format(dateFormat)
	endDate := h.now().AddDate(0, 0, timeslotWindowDays).Format(dateFormat)

	timeslots, err := h.services.Timeslot.GetTimeslots(ctx, dealerID, startDate, endDate)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, timeslots)
}
