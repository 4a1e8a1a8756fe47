package apiclient

import (
	"context"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/user"
)

// GetPets lists pets matching filters. Unconstrained dimensions are left out
// of the query string.
func (c *Client) GetPets(ctx context.Context, filters pet.Filters) ([]pet.Pet, error) {
	var out []pet.Pet
	if err := c.get(ctx, "/pets", filters.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPetByID fetches one pet.
func (c *Client) GetPetByID(ctx context.Context, id string) (*pet.Pet, error) {
	var out pet.Pet
	if err := c.get(ctx, pathID("/pets", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStories lists the adoption stories.
func (c *Client) GetStories(ctx context.Context) ([]pet.Story, error) {
	var out []pet.Story
	if err := c.get(ctx, "/stories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCurrentUser fetches the signed-in user.
func (c *Client) GetCurrentUser(ctx context.Context) (*user.User, error) {
	var out user.User
	if err := c.get(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserStats fetches the profile counters.
func (c *Client) GetUserStats(ctx context.Context) (*user.Stats, error) {
	var out user.Stats
	if err := c.get(ctx, "/users/me/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
