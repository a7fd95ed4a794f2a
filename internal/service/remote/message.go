package remote

import (
	"context"
)

// MessageClient implements service.MessageService against the
// notification platform service.
type MessageClient struct {
	*Client
}

func NewMessageClient(c *Client) *MessageClient {
	return &MessageClient{Client: c}
}

type publishRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *MessageClient) Publish(ctx context.Context, subject, message string) error {
	return c.postJSON(ctx, "/messages", publishRequest{Subject: subject, Message: message}, nil)
}
