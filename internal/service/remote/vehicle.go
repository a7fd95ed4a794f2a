package remote

import (
	"context"
	"net/url"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// VehicleClient implements service.VehicleService against the vehicle
// platform service.
type VehicleClient struct {
	*Client
}

func NewVehicleClient(c *Client) *VehicleClient {
	return &VehicleClient{Client: c}
}

func (c *VehicleClient) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	return c.postJSON(ctx, "/vehicles", vehicle, nil)
}

func (c *VehicleClient) GetVehicle(ctx context.Context, vin string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	found, err := c.getJSON(ctx, "/vehicles/"+url.PathEscape(vin), nil, &vehicle)
	if err != nil || !found {
		return nil, err
	}
	return &vehicle, nil
}

type validatePinRequest struct {
	VIN string `json:"vin"`
	Pin string `json:"pin"`
}

type validatePinResponse struct {
	Valid bool `json:"valid"`
}

func (c *VehicleClient) ValidatePin(ctx context.Context, vin, pin string) (bool, error) {
	var out validatePinResponse
	err := c.postJSON(ctx, "/vehicles/"+url.PathEscape(vin)+"/pin", validatePinRequest{VIN: vin, Pin: pin}, &out)
	if err != nil {
		return false, err
	}
	return out.Valid, nil
}
