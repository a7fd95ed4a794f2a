package remote

import (
	"context"
	"net/url"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// RegistrationClient implements service.RegistrationService against the
// customer platform service.
type RegistrationClient struct {
	*Client
}

func NewRegistrationClient(c *Client) *RegistrationClient {
	return &RegistrationClient{Client: c}
}

func (c *RegistrationClient) CreateRegistration(ctx context.Context, registration *domain.Registration) error {
	return c.postJSON(ctx, "/registrations", registration, nil)
}

func (c *RegistrationClient) UpdateRegistration(ctx context.Context, patch *domain.RegistrationPatch) error {
	return c.putJSON(ctx, registrationPath(patch.Username, patch.VIN), patch)
}

func (c *RegistrationClient) GetCustomerRegistrations(ctx context.Context, username string) ([]domain.Registration, error) {
	path := "/customers/" + url.PathEscape(username) + "/registrations"
	return getList[domain.Registration](ctx, c.Client, path, nil)
}

func (c *RegistrationClient) GetVehicleRegistrations(ctx context.Context, vin string) ([]domain.Registration, error) {
	path := "/vehicles/" + url.PathEscape(vin) + "/registrations"
	return getList[domain.Registration](ctx, c.Client, path, nil)
}

func (c *RegistrationClient) GetRegistration(ctx context.Context, username, vin string) (*domain.Registration, error) {
	var registration domain.Registration
	found, err := c.getJSON(ctx, registrationPath(username, vin), nil, &registration)
	if err != nil || !found {
		return nil, err
	}
	return &registration, nil
}

func registrationPath(username, vin string) string {
	return "/customers/" + url.PathEscape(username) + "/registrations/" + url.PathEscape(vin)
}
