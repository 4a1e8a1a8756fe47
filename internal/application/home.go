// Package application holds the screen models of the adoption client: the
// state each screen shows and the operations its controls trigger.
package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/loader"
)

// Fallback messages shown when a failure carries no text of its own.
const (
	FallbackLoadData      = "載入數據失敗"
	FallbackLoadPet       = "獲取寵物詳情失敗"
	FallbackLoadFavorites = "載入收藏失敗"
	FallbackLoadMessages  = "載入訊息失敗"
	FallbackSubmit        = "提交申請失敗，請稍後再試"
	FallbackPost          = "刊登失敗，請稍後再試"
	FallbackSendMessage   = "發送訊息失敗"
)

func named(logger *zap.Logger, name string) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(name)
}

// none is the key of loaders that take no parameters.
type none struct{}

// HomeData is what the home screen shows.
type HomeData struct {
	Pets    []pet.Pet
	Stories []pet.Story
}

// Featured returns the pets flagged for the carousel.
func (d HomeData) Featured() []pet.Pet {
	var out []pet.Pet
	for _, p := range d.Pets {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// HomeScreen loads the pet list and adoption stories together.
type HomeScreen struct {
	*loader.Loader[none, HomeData]
}

// NewHomeScreen creates a HomeScreen backed by catalog.
func NewHomeScreen(catalog pet.Catalog, logger *zap.Logger) *HomeScreen {
	fetch := func(ctx context.Context, _ none) (HomeData, error) {
		var data HomeData
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			pets, err := catalog.GetPets(ctx, pet.DefaultFilters())
			if err != nil {
				return fmt.Errorf("get pets: %w", err)
			}
			data.Pets = pets
			return nil
		})
		g.Go(func() error {
			stories, err := catalog.GetStories(ctx)
			if err != nil {
				return fmt.Errorf("get stories: %w", err)
			}
			data.Stories = stories
			return nil
		})
		if err := g.Wait(); err != nil {
			return HomeData{}, err
		}
		return data, nil
	}
	return &HomeScreen{Loader: loader.New[none, HomeData](fetch, FallbackLoadData, named(logger, "home"))}
}

// Open loads the screen once.
func (s *HomeScreen) Open(ctx context.Context) error {
	return s.SetKey(ctx, none{})
}
