package remote

import (
	"context"
	"net/url"

	"github.com/fleetlink/connectedcar/internal/domain"
)

// CustomerClient implements service.CustomerService against the
// customer platform service.
type CustomerClient struct {
	*Client
}

func NewCustomerClient(c *Client) *CustomerClient {
	return &CustomerClient{Client: c}
}

func (c *CustomerClient) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	return c.postJSON(ctx, "/customers", customer, nil)
}

func (c *CustomerClient) GetCustomers(ctx context.Context, lastname string) ([]domain.Customer, error) {
	query := url.Values{"lastname": {lastname}}
	return getList[domain.Customer](ctx, c.Client, "/customers", query)
}

func (c *CustomerClient) GetCustomer(ctx context.Context, username string) (*domain.Customer, error) {
	var customer domain.Customer
	found, err := c.getJSON(ctx, "/customers/"+url.PathEscape(username), nil, &customer)
	if err != nil || !found {
		return nil, err
	}
	return &customer, nil
}

func (c *CustomerClient) UpdateCustomer(ctx context.Context, patch *domain.CustomerPatch) error {
	return c.putJSON(ctx, "/customers/"+url.PathEscape(patch.Username), patch)
}
