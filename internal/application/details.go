package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/favorites"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/loader"
)

// PetDetailsScreen shows one pet, keyed by its id.
type PetDetailsScreen struct {
	*loader.Loader[string, *pet.Pet]
	favorites *favorites.Store
}

// NewPetDetailsScreen creates a PetDetailsScreen.
func NewPetDetailsScreen(catalog pet.Catalog, store *favorites.Store, logger *zap.Logger) *PetDetailsScreen {
	return &PetDetailsScreen{
		Loader:    loader.New[string, *pet.Pet](catalog.GetPetByID, FallbackLoadPet, named(logger, "details")),
		favorites: store,
	}
}

// Show loads the pet with id. An empty id clears the screen.
func (s *PetDetailsScreen) Show(ctx context.Context, id string) error {
	if id == "" {
		s.Reset()
		return nil
	}
	return s.SetKey(ctx, id)
}

// Pet returns the pet for the requested id. It reports false while that pet
// has not loaded, even if an earlier pet is still held.
func (s *PetDetailsScreen) Pet() (pet.Pet, bool) {
	st := s.State()
	if st.Data == nil || !st.Current() {
		return pet.Pet{}, false
	}
	return *st.Data, true
}

// IsFavorite reports whether the shown pet is a favorite.
func (s *PetDetailsScreen) IsFavorite() bool {
	p, ok := s.Pet()
	return ok && s.favorites.IsFavorite(p.ID)
}

// ToggleFavorite flips the shown pet's favorite state. It does nothing until
// the requested pet has loaded.
func (s *PetDetailsScreen) ToggleFavorite(ctx context.Context) error {
	p, ok := s.Pet()
	if !ok {
		return nil
	}
	return s.favorites.Toggle(ctx, p.ID)
}
