package remote

import (
	"context"
	"net/url"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// TimeslotClient implements service.TimeslotService against the dealer
// platform service.
type TimeslotClient struct {
	*Client
}

func NewTimeslotClient(c *Client) *TimeslotClient {
	return &TimeslotClient{Client: c}
}

func (c *TimeslotClient) CreateTimeslot(ctx context.Context, timeslot *domain.Timeslot) error {
	return c.postJSON(ctx, "/timeslots", timeslot, nil)
}

func (c *TimeslotClient) GetTimeslots(ctx context.Context, dealerID, startDate, endDate string) ([]domain.Timeslot, error) {
	query := url.Values{
		"startDate": {startDate},
		"endDate":   {endDate},
	}
	path := "/dealers/" + url.PathEscape(dealerID) + "/timeslots"
	return getList[domain.Timeslot](ctx, c.Client, path, query)
}

func (c *TimeslotClient) GetTimeslot(ctx context.Context, dealerID, serviceDateHour string) (*domain.Timeslot, error) {
	path := "/dealers/" + url.PathEscape(dealerID) + "/timeslots/" + url.PathEscape(serviceDateHour)
	var timeslot domain.Timeslot
	found, err := c.getJSON(ctx, path, nil, &timeslot)
	if err != nil || !found {
		return nil, err
	}
	return &timeslot, nil
}
