package remote

import (
	"context"
	"net/url"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// AppointmentClient implements service.AppointmentService against the
// appointment platform service.
type AppointmentClient struct {
	*Client
}

func NewAppointmentClient(c *Client) *AppointmentClient {
	return &AppointmentClient{Client: c}
}

type createAppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
}

func (c *AppointmentClient) CreateAppointment(ctx context.Context, appointment *domain.Appointment) (string, error) {
	var out createAppointmentResponse
	if err := c.postJSON(ctx, "/appointments", appointment, &out); err != nil {
		return "", err
	}
	return out.AppointmentID, nil
}

func (c *AppointmentClient) GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	var appointment domain.Appointment
	found, err := c.getJSON(ctx, "/appointments/"+url.PathEscape(appointmentID), nil, &appointment)
	if err != nil || !found {
		return nil, err
	}
	return &appointment, nil
}

func (c *AppointmentClient) DeleteAppointment(ctx context.Context, appointmentID string) error {
	return c.delete(ctx, "/appointments/"+url.PathEscape(appointmentID))
}

func (c *AppointmentClient) GetRegistrationAppointments(ctx context.Context, key *domain.RegistrationKey) ([]domain.Appointment, error) {
	path := "/customers/" + url.PathEscape(key.Username) + "/vehicles/" + url.PathEscape(key.VIN) + "/appointments"
	return getList[domain.Appointment](ctx, c.Client, path, nil)
}
