package pet

import "context"

// Catalog defines read access to the remote pet catalog.
type Catalog interface {
	GetPets(ctx context.Context, filters Filters) ([]Pet, error)
	GetPetByID(ctx context.Context, id string) (*Pet, error)
	GetStories(ctx context.Context) ([]Story, error)
	GetFavorites(ctx context.Context) ([]Pet, error)
}
