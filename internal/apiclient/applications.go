package apiclient

import (
	"context"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/adoption"
)

// GetApplications lists the user's adoption applications.
func (c *Client) GetApplications(ctx context.Context) ([]adoption.Application, error) {
	var out []adoption.Application
	if err := c.get(ctx, "/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApplication fetches one application.
func (c *Client) GetApplication(ctx context.Context, id string) (*adoption.Application, error) {
	var out adoption.Application
	if err := c.get(ctx, pathID("/applications", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitApplication files a new adoption application.
func (c *Client) SubmitApplication(ctx context.Context, req adoption.CreateApplication) (*adoption.SubmitResult, error) {
	var out adoption.SubmitResult
	if err := c.post(ctx, "/applications", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
