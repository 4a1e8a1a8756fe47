package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/adoption"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/message"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/user"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/loader"
)

// SubView is a section of the profile screen.
type SubView string

const (
	SubViewMain     SubView = "main"
	SubViewHistory  SubView = "history"
	SubViewListings SubView = "listings"
	SubViewMessages SubView = "messages"
	SubViewChat     SubView = "chat"
)

// ProfileData is everything the profile screen shows.
type ProfileData struct {
	Applications []adoption.Application
	Listings     []listing.Listing
	Threads      []message.Thread
	Pets         []pet.Pet
	FavoritePets []pet.Pet
	Stats        user.Stats
}

// ProfileDeps are the remote services the profile reads and writes.
type ProfileDeps struct {
	Applications adoption.ApplicationRepository
	Listings     listing.ListingRepository
	Inbox        message.Inbox
	Catalog      pet.Catalog
	Users        user.Directory
}

// ProfileScreen is the user's hub: applications, listings, favorites and
// the message inbox.
type ProfileScreen struct {
	*loader.Loader[none, ProfileData]
	Chat *ChatScreen

	listings listing.ListingRepository
	logger   *zap.Logger

	mu      sync.Mutex
	subView SubView
}

// NewProfileScreen creates a ProfileScreen on its main view.
func NewProfileScreen(deps ProfileDeps, logger *zap.Logger) *ProfileScreen {
	logger = named(logger, "profile")
	return &ProfileScreen{
		Loader:   loader.New[none, ProfileData](loadProfile(deps), FallbackLoadData, logger),
		Chat:     NewChatScreen(deps.Inbox, logger),
		listings: deps.Listings,
		logger:   logger,
		subView:  SubViewMain,
	}
}

func loadProfile(deps ProfileDeps) loader.FetchFunc[none, ProfileData] {
	return func(ctx context.Context, _ none) (ProfileData, error) {
		var data ProfileData
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			data.Applications, err = deps.Applications.GetApplications(ctx)
			return wrap("get applications", err)
		})
		g.Go(func() (err error) {
			data.Listings, err = deps.Listings.GetListings(ctx)
			return wrap("get listings", err)
		})
		g.Go(func() (err error) {
			data.Threads, err = deps.Inbox.GetMessageThreads(ctx)
			return wrap("get threads", err)
		})
		g.Go(func() (err error) {
			data.Pets, err = deps.Catalog.GetPets(ctx, pet.DefaultFilters())
			return wrap("get pets", err)
		})
		g.Go(func() (err error) {
			data.FavoritePets, err = deps.Catalog.GetFavorites(ctx)
			return wrap("get favorites", err)
		})
		g.Go(func() error {
			stats, err := deps.Users.GetUserStats(ctx)
			if err != nil {
				return wrap("get stats", err)
			}
			data.Stats = *stats
			return nil
		})
		if err := g.Wait(); err != nil {
			return ProfileData{}, err
		}
		return data, nil
	}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Open loads the profile once.
func (s *ProfileScreen) Open(ctx context.Context) error {
	return s.SetKey(ctx, none{})
}

// SubView returns the section being shown.
func (s *ProfileScreen) SubView() SubView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subView
}

// Show switches to a section other than chat.
func (s *ProfileScreen) Show(v SubView) {
	if v == SubViewChat {
		return
	}
	s.mu.Lock()
	s.subView = v
	s.mu.Unlock()
}

// Back moves up one level: chat to messages, any section to main. It
// returns false on main, where the caller leaves the profile.
func (s *ProfileScreen) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.subView {
	case SubViewChat:
		s.subView = SubViewMessages
	case SubViewMain:
		return false
	default:
		s.subView = SubViewMain
	}
	return true
}

// OpenChat shows threadID and loads its messages.
func (s *ProfileScreen) OpenChat(ctx context.Context, threadID string) error {
	s.mu.Lock()
	s.subView = SubViewChat
	s.mu.Unlock()
	return s.Chat.Open(ctx, threadID)
}

// ApplyInitialThread opens the thread handed over by navigation, if any.
func (s *ProfileScreen) ApplyInitialThread(ctx context.Context, threadID string) error {
	if threadID == "" {
		return nil
	}
	return s.OpenChat(ctx, threadID)
}

// SelectedThread returns the thread the chat shows, if it is in the inbox.
func (s *ProfileScreen) SelectedThread() (message.Thread, bool) {
	id := s.Chat.ThreadID()
	for _, t := range s.Data().Threads {
		if t.ID == id {
			return t, true
		}
	}
	return message.Thread{}, false
}

// PetForApplication finds the pet an application is about.
func (s *ProfileScreen) PetForApplication(app adoption.Application) (pet.Pet, bool) {
	for _, p := range s.Data().Pets {
		if p.ID == app.PetID {
			return p, true
		}
	}
	return pet.Pet{}, false
}

// UnreadThreads returns threads with unseen messages.
func (s *ProfileScreen) UnreadThreads() []message.Thread {
	var out []message.Thread
	for _, t := range s.Data().Threads {
		if t.HasUnread() {
			out = append(out, t)
		}
	}
	return out
}

// DeleteListing removes a listing and reloads the profile.
func (s *ProfileScreen) DeleteListing(ctx context.Context, id string) error {
	if err := s.listings.DeleteListing(ctx, id); err != nil {
		s.logger.Error("failed to delete listing", zap.String("listing_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("listing deleted", zap.String("listing_id", id))
	return s.Refetch(ctx)
}

// SetListingStatus changes a listing's status and reloads the profile. The
// change is checked against the listing lifecycle when the listing is known.
func (s *ProfileScreen) SetListingStatus(ctx context.Context, id string, status listing.ListingStatus) error {
	for _, l := range s.Data().Listings {
		if l.ID != id {
			continue
		}
		if err := l.Status.Transition(status); err != nil {
			return err
		}
		break
	}
	if err := s.listings.UpdateListingStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update listing status",
			zap.String("listing_id", id),
			zap.String("status", status.String()),
			zap.Error(err),
		)
		return err
	}
	return s.Refetch(ctx)
}
