package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// EventClient implements service.EventService against the vehicle
// platform service.
type EventClient struct {
	*Client
}

func NewEventClient(c *Client) *EventClient {
	return &EventClient{Client: c}
}

func (c *EventClient) CreateEvent(ctx context.Context, event *domain.Event) error {
	return c.postJSON(ctx, "/vehicles/"+url.PathEscape(event.VIN)+"/events", event, nil)
}

func (c *EventClient) GetEvents(ctx context.Context, vin string) ([]domain.Event, error) {
	return getList[domain.Event](ctx, c.Client, "/vehicles/"+url.PathEscape(vin)+"/events", nil)
}

func (c *EventClient) GetEvent(ctx context.Context, vin string, timestamp int64) (*domain.Event, error) {
	path := "/vehicles/" + url.PathEscape(vin) + "/events/" + strconv.FormatInt(timestamp, 10)
	var event domain.Event
	found, err := c.getJSON(ctx, path, nil, &event)
	if err != nil || !found {
		return nil, err
	}
	return &event, nil
}
