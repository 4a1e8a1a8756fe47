// Package favorites keeps the client-side mirror of the user's favorite pets.
//
// The Store is the single owner of the set. Toggles are applied locally first
// and then persisted; the Store itself undoes a toggle whose request fails, so
// callers never carry rollback logic.
package favorites

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
)

// FallbackLoadError is shown when loading the set fails without a message.
const FallbackLoadError = "獲取收藏列表失敗"

// Remote persists favorite membership.
type Remote interface {
	GetFavoriteIDs(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, petID string) error
	RemoveFavorite(ctx context.Context, petID string) error
}

// Listener is called with a snapshot of the set after every change and after
// every confirmed toggle.
type Listener func(ids []string)

// entry tracks in-flight toggles for one id.
type entry struct {
	// seq identifies the latest toggle issued for the id.
	seq uint64
	// pending counts toggles whose requests have not resolved.
	pending int
	// confirmed is the membership the server last acknowledged.
	confirmed bool
}

// Store is the owned favorite set.
type Store struct {
	remote Remote
	logger *zap.Logger

	mu        sync.Mutex
	ids       map[string]struct{}
	entries   map[string]*entry
	loading   bool
	loadErr   string
	listeners map[int]Listener
	nextSub   int
}

// NewStore creates an empty Store backed by remote.
func NewStore(remote Remote, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		remote:    remote,
		logger:    logger,
		ids:       make(map[string]struct{}),
		entries:   make(map[string]*entry),
		listeners: make(map[int]Listener),
	}
}

// Load replaces the set with the server's membership. On failure the current
// set is kept and Err reports the message.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.loadErr = ""
	s.mu.Unlock()

	ids, err := s.remote.GetFavoriteIDs(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.loadErr = apiclient.Message(err, FallbackLoadError)
		s.mu.Unlock()
		s.logger.Error("failed to load favorites", zap.Error(err))
		return err
	}

	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	// Ids with a toggle in flight keep their optimistic state; the request
	// outcome decides them.
	for id, e := range s.entries {
		if e.pending > 0 {
			if _, ok := s.ids[id]; ok {
				next[id] = struct{}{}
			} else {
				delete(next, id)
			}
			continue
		}
		delete(s.entries, id)
	}
	s.ids = next
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("favorites loaded", zap.Int("count", len(snapshot)))
	notify(listeners, snapshot)
	return nil
}

// Toggle flips membership of id immediately, then persists the change. If the
// request fails and no newer toggle for id has been issued, membership is
// restored to what the server last confirmed. Once every toggle for id has
// settled, membership equals the last confirmed state. The failure is logged
// and returned; it is never fatal.
func (s *Store) Toggle(ctx context.Context, id string) error {
	adding, seq := s.apply(id)
	return s.persist(ctx, id, adding, seq)
}

// ToggleAsync applies the local flip before returning and persists it in the
// background. The channel yields the request outcome and is then closed.
func (s *Store) ToggleAsync(ctx context.Context, id string) <-chan error {
	adding, seq := s.apply(id)
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- s.persist(ctx, id, adding, seq)
	}()
	return done
}

// apply performs the optimistic flip and notifies listeners.
func (s *Store) apply(id string) (adding bool, seq uint64) {
	s.mu.Lock()
	_, member := s.ids[id]
	e, ok := s.entries[id]
	if !ok {
		e = &entry{confirmed: member}
		s.entries[id] = e
	}
	e.seq++
	e.pending++
	seq = e.seq

	adding = !member
	if adding {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
	return adding, seq
}

func (s *Store) persist(ctx context.Context, id string, adding bool, seq uint64) error {
	var err error
	if adding {
		err = s.remote.AddFavorite(ctx, id)
	} else {
		err = s.remote.RemoveFavorite(ctx, id)
	}

	s.mu.Lock()
	e := s.entries[id]
	e.pending--
	if err == nil {
		e.confirmed = adding
	}
	// A failed latest toggle rolls back at once; otherwise local state
	// converges on the confirmed membership once every request has settled.
	changed := false
	if (err != nil && e.seq == seq) || e.pending == 0 {
		changed = s.setLocked(id, e.confirmed)
	}
	if e.pending == 0 {
		delete(s.entries, id)
	}
	// Confirmations are announced even when membership did not change.
	notifyAll := changed || err == nil
	var snapshot []string
	var listeners []Listener
	if notifyAll {
		snapshot, listeners = s.snapshotLocked()
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to toggle favorite",
			zap.String("pet_id", id),
			zap.Bool("adding", adding),
			zap.Bool("rolled_back", changed),
			zap.Error(err),
		)
	}
	if notifyAll {
		notify(listeners, snapshot)
	}
	return err
}

// setLocked sets membership of id and reports whether it changed.
func (s *Store) setLocked(id string, member bool) bool {
	_, current := s.ids[id]
	if current == member {
		return false
	}
	if member {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
	return true
}

// IsFavorite reports whether id is currently in the set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns the set as a sorted slice.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, _ := s.snapshotLocked()
	return ids
}

// Len returns the size of the set.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Loading reports whether a Load is in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message of the last failed Load, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Subscribe registers fn for change notifications and returns a func that
// removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotLocked() ([]string, []Listener) {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return ids, listeners
}

func notify(listeners []Listener, ids []string) {
	for _, l := range listeners {
		l(ids)
	}
}
