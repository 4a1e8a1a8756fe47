package application

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/favorites"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/loader"
)

// FavoritesScreen lists favorited pets and refreshes whenever the favorite
// set changes.
type FavoritesScreen struct {
	*loader.Loader[none, []pet.Pet]
	store  *favorites.Store
	logger *zap.Logger

	mu          sync.Mutex
	unsubscribe func()
	refreshes   sync.WaitGroup
}

// NewFavoritesScreen creates a FavoritesScreen.
func NewFavoritesScreen(catalog pet.Catalog, store *favorites.Store, logger *zap.Logger) *FavoritesScreen {
	logger = named(logger, "favorites")
	fetch := func(ctx context.Context, _ none) ([]pet.Pet, error) {
		return catalog.GetFavorites(ctx)
	}
	return &FavoritesScreen{
		Loader: loader.New[none, []pet.Pet](fetch, FallbackLoadFavorites, logger),
		store:  store,
		logger: logger,
	}
}

// Open loads the list and starts following the favorite set. ctx bounds
// the background refreshes; Close stops them.
func (s *FavoritesScreen) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.unsubscribe == nil {
		s.unsubscribe = s.store.Subscribe(func([]string) {
			s.refreshes.Add(1)
			go func() {
				defer s.refreshes.Done()
				if err := s.Refetch(ctx); err != nil && !errors.Is(err, loader.ErrSuperseded) {
					s.logger.Warn("favorites refresh failed", zap.Error(err))
				}
			}()
		})
	}
	s.mu.Unlock()
	return s.SetKey(ctx, none{})
}

// Close stops following the favorite set and waits for pending refreshes.
func (s *FavoritesScreen) Close() {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.mu.Unlock()
	s.refreshes.Wait()
}

// IsFavorite reports whether id is in the favorite set.
func (s *FavoritesScreen) IsFavorite(id string) bool {
	return s.store.IsFavorite(id)
}

// Toggle flips the favorite state of id.
func (s *FavoritesScreen) Toggle(ctx context.Context, id string) error {
	return s.store.Toggle(ctx, id)
}
