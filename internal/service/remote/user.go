package remote

import (
	"context"
)

// UserClient implements service.UserService against the identity
// platform service.
type UserClient struct {
	*Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{Client: c}
}

type createUserRequest struct {
	Username          string `json:"username"`
	TemporaryPassword string `json:"temporaryPassword"`
}

func (c *UserClient) CreateUser(ctx context.Context, username, temporaryPassword string) error {
	return c.postJSON(ctx, "/users", createUserRequest{
		Username:          username,
		TemporaryPassword: temporaryPassword,
	}, nil)
}
