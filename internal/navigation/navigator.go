// Package navigation tracks which screen is shown and the context handed
// between screens: the selected pet and the thread to open on the profile.
package navigation

import (
	"fmt"
	"sync"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

// View identifies a top-level screen.
type View string

const (
	ViewHome      View = "home"
	ViewExplore   View = "explore"
	ViewDetails   View = "details"
	ViewForm      View = "form"
	ViewProfile   View = "profile"
	ViewFavorites View = "favorites"
	ViewPost      View = "post"
)

// IsValid returns true if v is a known view.
func (v View) IsValid() bool {
	switch v {
	case ViewHome, ViewExplore, ViewDetails, ViewForm, ViewProfile, ViewFavorites, ViewPost:
		return true
	}
	return false
}

// ParseView converts a string to a View.
func ParseView(s string) (View, error) {
	v := View(s)
	if !v.IsValid() {
		return "", fmt.Errorf("unknown view: %s", s)
	}
	return v, nil
}

// Shelter thread ids used by ContactShelter.
const (
	ThreadBella   = "00000000-0000-0000-0000-000000000011"
	ThreadMilo    = "00000000-0000-0000-0000-000000000012"
	ThreadDefault = "00000000-0000-0000-0000-000000000013"
)

// ShelterThread returns the conversation with the shelter that lists p.
func ShelterThread(p pet.Pet) string {
	switch p.Name {
	case "Bella":
		return ThreadBella
	case "Milo":
		return ThreadMilo
	default:
		return ThreadDefault
	}
}

// Navigator is the in-memory view switcher.
type Navigator struct {
	notifications *notification.Center

	mu            sync.Mutex
	current       View
	selected      *pet.Pet
	initialThread string
}

// NewNavigator starts on the home view.
func NewNavigator(notifications *notification.Center) *Navigator {
	if notifications == nil {
		notifications = notification.NewCenter()
	}
	return &Navigator{notifications: notifications, current: ViewHome}
}

// NavigateTo switches to view. A non-nil p becomes the selected pet. Leaving
// the profile drops the pending thread.
func (n *Navigator) NavigateTo(view View, p *pet.Pet) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if p != nil {
		sel := *p
		n.selected = &sel
	}
	if view != ViewProfile {
		n.initialThread = ""
	}
	n.current = view
}

// Current returns the requested view.
func (n *Navigator) Current() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Resolve returns the view to render. Details and the adoption form need a
// selected pet; without one, and for unknown views, it is home.
func (n *Navigator) Resolve() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch n.current {
	case ViewDetails, ViewForm:
		if n.selected == nil {
			return ViewHome
		}
	}
	if !n.current.IsValid() {
		return ViewHome
	}
	return n.current
}

// SelectedPet returns the pet chosen for details and adoption.
func (n *Navigator) SelectedPet() (pet.Pet, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.selected == nil {
		return pet.Pet{}, false
	}
	return *n.selected, true
}

// OpenChat shows the profile with threadID open and marks messages as seen.
func (n *Navigator) OpenChat(threadID string) {
	n.mu.Lock()
	n.initialThread = threadID
	n.current = ViewProfile
	n.mu.Unlock()

	n.notifications.ClearUnread()
	n.notifications.Dismiss()
}

// ContactShelter opens the conversation with the shelter listing p.
func (n *Navigator) ContactShelter(p pet.Pet) string {
	threadID := ShelterThread(p)
	n.OpenChat(threadID)
	return threadID
}

// OpenActiveNotification opens the thread of the active banner, if any.
func (n *Navigator) OpenActiveNotification() (string, bool) {
	active, ok := n.notifications.Active()
	if !ok {
		return "", false
	}
	n.OpenChat(active.ThreadID)
	return active.ThreadID, true
}

// InitialThread returns the pending thread without consuming it.
func (n *Navigator) InitialThread() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.initialThread
}

// TakeInitialThread returns the pending thread and clears it together with
// the unread count.
func (n *Navigator) TakeInitialThread() string {
	n.mu.Lock()
	threadID := n.initialThread
	n.initialThread = ""
	n.mu.Unlock()

	if threadID != "" {
		n.notifications.ClearUnread()
	}
	return threadID
}
