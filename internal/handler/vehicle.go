package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/errs"
	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
)

// VehicleHandler serves the vehicle channel. Every request on this
// channel already passed the pin authorizer, and the X-Vin header the
// authorizer validated is the only vehicle identity these operations
// trust: whatever VIN a payload claims is overwritten with it.
type VehicleHandler struct {
	Handler
	services *service.Services
}

func NewVehicleHandler(s *server.Server, services *service.Services) *VehicleHandler {
	return &VehicleHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// CreateEvent records a telemetry event reported by the vehicle.
func (h *VehicleHandler) CreateEvent(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	vin, err := gateway.HeaderValue(req, gateway.HeaderXVin)
	if err != nil {
		return gateway.Response{}, err
	}

	var event domain.Event
	if err := h.codec.Decode(req.Body, &event); err != nil {
		return gateway.Response{}, err
	}
	event.VIN = vin

	if err := h.services.Event.CreateEvent(ctx, &event); err != nil {
		return gateway.Response{}, err
	}

	return gateway.CreatedResponse(fmt.Sprintf("/vehicle/events/%d", event.Timestamp)), nil
}

// GetEvents lists the vehicle's own telemetry events.
func (h *VehicleHandler) GetEvents(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	vin, err := gateway.HeaderValue(req, gateway.HeaderXVin)
	if err != nil {
		return gateway.Response{}, err
	}

	events, err := h.services.Event.GetEvents(ctx, vin)
	if err != nil {
		return gateway.Response{}, err
	}
	return listOK(h.Handler, events)
}

// GetEvent returns one telemetry event by its timestamp identifier.
func (h *VehicleHandler) GetEvent(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	vin, err := gateway.HeaderValue(req, gateway.HeaderXVin)
	if err != nil {
		return gateway.Response{}, err
	}
	raw, err := gateway.PathParam(req, gateway.PathTimestamp)
	if err != nil {
		return gateway.Response{}, err
	}
	timestamp, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return gateway.Response{}, errs.NewInvalidParameter(gateway.PathTimestamp, errs.SourcePath, raw)
	}

	event, err := h.services.Event.GetEvent(ctx, vin, timestamp)
	if err != nil {
		return gateway.Response{}, err
	}
	if event == nil {
		return gateway.StatusResponse(http.StatusNotFound), nil
	}
	return h.jsonOK(event)
}
