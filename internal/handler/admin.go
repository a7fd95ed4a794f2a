package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/middleware"
	"github.com/fleetlink/connectedcar/internal/orchestrator"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
)

// AdminHandler serves the back-office channel. Its endpoints address
// any customer or vehicle directly; authorization for this channel
// happens upstream, before requests reach the facade.
type AdminHandler struct {
	Handler
	services     *service.Services
	orchestrator *orchestrator.AdminOrchestrator
}

func NewAdminHandler(s *server.Server, services *service.Services, o *orchestrator.AdminOrchestrator) *AdminHandler {
	return &AdminHandler{
		Handler:      NewHandler(s),
		services:     services,
		orchestrator: o,
	}
}

// CreateDealer registers a dealer and reports its canonical path.
func (h *AdminHandler) CreateDealer(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var dealer domain.Dealer
	if err := h.codec.Decode(req.Body, &dealer); err != nil {
		return gateway.Response{}, err
	}

	dealerID, err := h.services.Dealer.CreateDealer(ctx, &dealer)
	if err != nil {
		return gateway.Response{}, err
	}

	return gateway.CreatedResponse(fmt.Sprintf("/admin/dealers/%s", dealerID)), nil
}

func (h *AdminHandler) GetDealers(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
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

func (h *AdminHandler) GetDealer(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	dealerID, err := gateway.PathParam(req, gateway.PathDealerID)
	if err != nil {
		return gateway.Response{}, err
	}

	dealer, err := h.services.Dealer.GetDealer(ctx, dealerID)
	if err != nil {
		return gateway.Response{}, err
	}
	if dealer == nil {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(dealer)
}

// CreateTimeslot opens service capacity at a dealer. The raw body is
// logged before decoding for capacity planning audits.
func (h *AdminHandler) CreateTimeslot(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	if req.Body != nil {
		middleware.LoggerFromContext(ctx).Info().Str("body", *req.Body).Msg("timeslot payload")
	}

	var timeslot domain.Timeslot
	if err := h.codec.Decode(req.Body, &timeslot); err != nil {
		return gateway.Response{}, err
	}

	if err := h.services.Timeslot.CreateTimeslot(ctx, &timeslot); err != nil {
		return gateway.Response{}, err
	}

	location := fmt.Sprintf("/admin/dealers/%s/timeslots/%s", timeslot.DealerID, timeslot.ServiceDateHour)
	return gateway.CreatedResponse(location), nil
}

func (h *AdminHandler) GetTimeslots(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	dealerID, err := gateway.PathParam(req, gateway.PathDealerID)
	if err != nil {
		return gateway.Response{}, err
	}
	startDate, err := gateway.QueryParam(req, gateway.QueryStartDate)
	if err != nil {
		return gateway.Response{}, err
	}
	endDate, err := gateway.QueryParam(req, gateway.QueryEndDate)
	if err != nil {
		return gateway.Response{}, err
	}

	timeslots, err := h.services.Timeslot.GetTimeslots(ctx, dealerID, startDate, endDate)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, timeslots)
}

func (h *AdminHandler) GetTimeslot(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	dealerID, err := gateway.PathParam(req, gateway.PathDealerID)
	if err != nil {
		return gateway.Response{}, err
	}
	serviceDateHour, err := gateway.PathParam(req, gateway.PathServiceDateHour)
	if err != nil {
		return gateway.Response{}, err
	}

	timeslot, err := h.services.Timeslot.GetTimeslot(ctx, dealerID, serviceDateHour)
	if err != nil {
		return gateway.Response{}, err
	}
	if timeslot == nil {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(timeslot)
}

// CreateCustomer provisions the login account and the customer profile
// in one flow.
func (h *AdminHandler) CreateCustomer(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var provision domain.CustomerProvision
	if err := h.codec.Decode(req.Body, &provision); err != nil {
		return gateway.Response{}, err
	}

	if err := h.orchestrator.ProvisionCustomer(ctx, &provision); err != nil {
		return gateway.Response{}, err
	}

	return gateway.CreatedResponse(fmt.Sprintf("/admin/customers/%s", provision.Username)), nil
}

func (h *AdminHandler) GetCustomers(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	lastname, err := gateway.QueryParam(req, gateway.QueryLastname)
	if err != nil {
		return gateway.Response{}, err
	}

	customers, err := h.services.Customer.GetCustomers(ctx, lastname)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, customers)
}

func (h *AdminHandler) GetCustomer(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.PathParam(req, gateway.PathUsername)
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

func (h *AdminHandler) CreateRegistration(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var registration domain.Registration
	if err := h.codec.Decode(req.Body, &registration); err != nil {
		return gateway.Response{}, err
	}

	if err := h.services.Registration.CreateRegistration(ctx, &registration); err != nil {
		return gateway.Response{}, err
	}

	location := fmt.Sprintf("/admin/customers/%s/registrations/%s", registration.Username, registration.VIN)
	return gateway.CreatedResponse(location), nil
}

func (h *AdminHandler) UpdateRegistration(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var patch domain.RegistrationPatch
	if err := h.codec.Decode(req.Body, &patch); err != nil {
		return gateway.Response{}, err
	}

	if err := h.services.Registration.UpdateRegistration(ctx, &patch); err != nil {
		return gateway.Response{}, err
	}
	return gateway.StatusResponse(http.StatusOK), nil
}

func (h *AdminHandler) GetCustomerRegistrations(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.PathParam(req, gateway.PathUsername)
	if err != nil {
		return gateway.Response{}, err
	}

	registrations, err := h.services.Registration.GetCustomerRegistrations(ctx, username)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, registrations)
}

func (h *AdminHandler) GetRegistration(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	username, err := gateway.PathParam(req, gateway.PathUsername)
	if err != nil {
		return gateway.Response{}, err
	}
	vin, err := gateway.PathParam(req, gateway.PathVin)
	if err != nil {
		return gateway.Response{}, err
	}

	registration, err := h.services.Registration.GetRegistration(ctx, username, vin)
	if err != nil {
		return gateway.Response{}, err
	}
	if registration == nil {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(registration)
}

func (h *AdminHandler) CreateVehicle(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var vehicle domain.Vehicle
	if err := h.codec.Decode(req.Body, &vehicle); err != nil {
		return gateway.Response{}, err
	}

	if err := h.services.Vehicle.CreateVehicle(ctx, &vehicle); err != nil {
		return gateway.Response{}, err
	}

	return gateway.CreatedResponse(fmt.Sprintf("/admin/vehicles/%s", vehicle.VIN)), nil
}

func (h *AdminHandler) GetVehicle(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	vin, err := gateway.PathParam(req, gateway.PathVin)
	if err != nil {
		return gateway.Response{}, err
	}

	vehicle, err := h.services.Vehicle.GetVehicle(ctx, vin)
	if err != nil {
		return gateway.Response{}, err
	}
	if vehicle == nil {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(vehicle)
}

func (h *AdminHandler) GetVehicleRegistrations(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	vin, err := gateway.PathParam(req, gateway.PathVin)
	if err != nil {
		return gateway.Response{}, err
	}

	registrations, err := h.services.Registration.GetVehicleRegistrations(ctx, vin)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, registrations)
}
