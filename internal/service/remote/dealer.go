package remote

import (
	"context"
	"net/url"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// DealerClient implements service.DealerService against the dealer
// platform service.
type DealerClient struct {
	*Client
}

func NewDealerClient(c *Client) *DealerClient {
	return &DealerClient{Client: c}
}

type createDealerResponse struct {
	DealerID string `json:"dealerId"`
}

func (c *DealerClient) CreateDealer(ctx context.Context, dealer *domain.Dealer) (string, error) {
	var out createDealerResponse
	if err := c.postJSON(ctx, "/dealers", dealer, &out); err != nil {
		return "", err
	}
	return out.DealerID, nil
}

func (c *DealerClient) GetDealers(ctx context.Context, stateCode domain.StateCode) ([]domain.Dealer, error) {
	query := url.Values{"stateCode": {stateCode.String()}}
	return getList[domain.Dealer](ctx, c.Client, "/dealers", query)
}

func (c *DealerClient) GetDealer(ctx context.Context, dealerID string) (*domain.Dealer, error) {
	var dealer domain.Dealer
	found, err := c.getJSON(ctx, "/dealers/"+url.PathEscape(dealerID), nil, &dealer)
	if err != nil || !found {
		return nil, err
	}
	return &dealer, nil
}
