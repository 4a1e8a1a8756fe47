package apiclient

import (
	"context"
	"net/url"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
)

// GetListings lists the user's listings.
func (c *Client) GetListings(ctx context.Context) ([]listing.Listing, error) {
	var out []listing.Listing
	if err := c.get(ctx, "/listings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateListing posts a new listing.
func (c *Client) CreateListing(ctx context.Context, req listing.CreateListing) (*listing.CreateResult, error) {
	var out listing.CreateResult
	if err := c.post(ctx, "/listings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteListing removes a listing.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	var ack Ack
	return c.del(ctx, pathID("/listings", id), &ack)
}

// UpdateListingStatus changes a listing's status. The backend takes the new
// status as a query parameter.
func (c *Client) UpdateListingStatus(ctx context.Context, id string, status listing.ListingStatus) error {
	var ack Ack
	q := url.Values{"status": []string{status.String()}}
	return c.patch(ctx, pathID("/listings", id)+"/status", q, nil, &ack)
}
