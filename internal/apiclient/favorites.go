package apiclient

import (
	"context"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
)

// Ack is the acknowledgement returned by write endpoints.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type favoriteIDs struct {
	PetIDs []string `json:"pet_ids"`
}

type addFavoriteRequest struct {
	PetID string `json:"pet_id"`
}

// GetFavorites lists the favorited pets.
func (c *Client) GetFavorites(ctx context.Context) ([]pet.Pet, error) {
	var out []pet.Pet
	if err := c.get(ctx, "/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFavoriteIDs lists the ids of favorited pets.
func (c *Client) GetFavoriteIDs(ctx context.Context) ([]string, error) {
	var out favoriteIDs
	if err := c.get(ctx, "/favorites/ids", nil, &out); err != nil {
		return nil, err
	}
	return out.PetIDs, nil
}

// AddFavorite marks a pet as favorite.
func (c *Client) AddFavorite(ctx context.Context, petID string) error {
	var ack Ack
	return c.post(ctx, "/favorites", addFavoriteRequest{PetID: petID}, &ack)
}

// RemoveFavorite unmarks a pet.
func (c *Client) RemoveFavorite(ctx context.Context, petID string) error {
	var ack Ack
	return c.del(ctx, pathID("/favorites", petID), &ack)
}
