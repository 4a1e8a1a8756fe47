package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/loader"
)

// ExploreScreen lists pets matching the selected filters and reloads when
// a filter changes.
type ExploreScreen struct {
	*loader.Loader[pet.Filters, []pet.Pet]
	logger *zap.Logger
}

// NewExploreScreen creates an ExploreScreen with every filter unconstrained.
func NewExploreScreen(catalog pet.Catalog, logger *zap.Logger) *ExploreScreen {
	logger = named(logger, "explore")
	return &ExploreScreen{
		Loader: loader.New[pet.Filters, []pet.Pet](catalog.GetPets, FallbackLoadData, logger),
		logger: logger,
	}
}

// Open loads the pets for the current filters unless already loaded.
func (s *ExploreScreen) Open(ctx context.Context) error {
	return s.SetKey(ctx, s.Filters())
}

// Filters returns the filters in effect.
func (s *ExploreScreen) Filters() pet.Filters {
	f := s.State().Key
	if f == (pet.Filters{}) {
		return pet.DefaultFilters()
	}
	return f
}

// Select sets one filter dimension and reloads if the filters changed.
func (s *ExploreScreen) Select(ctx context.Context, dim pet.Dimension, value string) error {
	next, err := s.Filters().With(dim, value)
	if err != nil {
		return err
	}
	s.logger.Debug("filter selected", zap.String("dimension", string(dim)), zap.String("value", value))
	return s.SetKey(ctx, next)
}

// Apply replaces all filters at once.
func (s *ExploreScreen) Apply(ctx context.Context, f pet.Filters) error {
	return s.SetKey(ctx, normalize(f))
}

// Reset clears every filter.
func (s *ExploreScreen) Reset(ctx context.Context) error {
	return s.SetKey(ctx, pet.DefaultFilters())
}

// IsFiltered reports whether any filter constrains the list.
func (s *ExploreScreen) IsFiltered() bool {
	return !s.Filters().IsDefault()
}

// normalize replaces empty dimensions by their sentinel so equivalent
// filters share one key.
func normalize(f pet.Filters) pet.Filters {
	d := pet.DefaultFilters()
	if f.Location == "" {
		f.Location = d.Location
	}
	if f.AgeGroup == "" {
		f.AgeGroup = d.AgeGroup
	}
	if f.Size == "" {
		f.Size = d.Size
	}
	if f.Gender == "" {
		f.Gender = d.Gender
	}
	if f.PetType == "" {
		f.PetType = d.PetType
	}
	if f.Sort == "" {
		f.Sort = d.Sort
	}
	return f
}
