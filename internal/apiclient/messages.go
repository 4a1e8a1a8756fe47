package apiclient

import (
	"context"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/message"
)

// GetMessageThreads lists the user's conversations.
func (c *Client) GetMessageThreads(ctx context.Context) ([]message.Thread, error) {
	var out []message.Thread
	if err := c.get(ctx, "/messages/threads", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMessages lists the messages of a thread.
func (c *Client) GetMessages(ctx context.Context, threadID string) ([]message.Message, error) {
	var out []message.Message
	if err := c.get(ctx, pathID("/messages/threads", threadID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts a message and returns it as stored by the backend.
func (c *Client) SendMessage(ctx context.Context, threadID string, req message.SendRequest) (*message.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out message.Message
	if err := c.post(ctx, pathID("/messages/threads", threadID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
