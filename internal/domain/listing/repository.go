package listing

import "context"

// CreateResult is what the API returns after creating a listing.
type CreateResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ListingID string `json:"listing_id,omitempty"`
}

// ListingRepository defines remote operations for a user's listings.
type ListingRepository interface {
	GetListings(ctx context.Context) ([]Listing, error)
	CreateListing(ctx context.Context, req CreateListing) (*CreateResult, error)
	DeleteListing(ctx context.Context, id string) error
	UpdateListingStatus(ctx context.Context, id string, status ListingStatus) error
}
