// Package loader runs keyed fetches for screens that show remote data.
//
// A Loader keeps the last good data across failures and discards results of
// loads that a newer load has superseded.
package loader

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
)

// ErrSuperseded is returned by a load whose result was discarded because a
// newer load started.
var ErrSuperseded = errors.New("load superseded")

// FetchFunc retrieves the data for key.
type FetchFunc[K comparable, T any] func(ctx context.Context, key K) (T, error)

// State is a snapshot of a Loader.
type State[K comparable, T any] struct {
	Key K
	// Data is the result of the last successful load, for DataKey. It may
	// belong to an earlier key when the load for Key failed.
	Data    T
	DataKey K
	Loading bool
	// Err is the message of the last failed load, or "".
	Err string
	// Loaded is true once any load has succeeded.
	Loaded bool
}

// Current reports whether Data was loaded for Key.
func (s State[K, T]) Current() bool {
	return s.Loaded && s.DataKey == s.Key
}

// Loader holds the data, loading flag and error of one fetch.
type Loader[K comparable, T any] struct {
	fetch    FetchFunc[K, T]
	fallback string
	logger   *zap.Logger

	mu         sync.Mutex
	state      State[K, T]
	requested  bool
	generation uint64
	cancel     context.CancelFunc
	listeners  map[int]func(State[K, T])
	nextSub    int
}

// New creates a Loader. fallback is the error text used when a failure
// carries no message.
func New[K comparable, T any](fetch FetchFunc[K, T], fallback string, logger *zap.Logger) *Loader[K, T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader[K, T]{
		fetch:     fetch,
		fallback:  fallback,
		logger:    logger,
		listeners: make(map[int]func(State[K, T])),
	}
}

// Load fetches key, cancelling any load still in flight. On failure the
// previous data is kept and the error text is recorded.
func (l *Loader[K, T]) Load(ctx context.Context, key K) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	l.cancel = cancel
	l.requested = true
	l.state.Key = key
	l.state.Loading = true
	l.state.Err = ""
	snapshot, listeners := l.snapshotLocked()
	l.mu.Unlock()
	notify(listeners, snapshot)

	data, err := l.fetch(ctx, key)

	l.mu.Lock()
	if gen != l.generation {
		l.mu.Unlock()
		return ErrSuperseded
	}
	l.cancel = nil
	l.state.Loading = false
	if err != nil {
		l.state.Err = apiclient.Message(err, l.fallback)
	} else {
		l.state.Data = data
		l.state.DataKey = key
		l.state.Loaded = true
	}
	snapshot, listeners = l.snapshotLocked()
	l.mu.Unlock()

	if err != nil {
		l.logger.Warn("load failed", zap.Any("key", key), zap.Error(err))
	}
	notify(listeners, snapshot)
	return err
}

// SetKey loads key unless it is already the current key and a load for it
// has been issued.
func (l *Loader[K, T]) SetKey(ctx context.Context, key K) error {
	l.mu.Lock()
	same := l.requested && l.state.Key == key
	l.mu.Unlock()
	if same {
		return nil
	}
	return l.Load(ctx, key)
}

// Refetch reloads the current key.
func (l *Loader[K, T]) Refetch(ctx context.Context) error {
	l.mu.Lock()
	key := l.state.Key
	l.mu.Unlock()
	return l.Load(ctx, key)
}

// Update replaces the data with fn(data) when key is the current key and the
// data was loaded for it, for local changes such as appending a sent
// message. It reports whether the update was applied.
func (l *Loader[K, T]) Update(key K, fn func(T) T) bool {
	l.mu.Lock()
	if !l.requested || l.state.Key != key || !l.state.Current() {
		l.mu.Unlock()
		return false
	}
	l.state.Data = fn(l.state.Data)
	snapshot, listeners := l.snapshotLocked()
	l.mu.Unlock()
	notify(listeners, snapshot)
	return true
}

// Reset drops the data and error and cancels any load in flight.
func (l *Loader[K, T]) Reset() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.generation++
	l.requested = false
	l.state = State[K, T]{}
	snapshot, listeners := l.snapshotLocked()
	l.mu.Unlock()
	notify(listeners, snapshot)
}

// State returns the current snapshot.
func (l *Loader[K, T]) State() State[K, T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Data returns the last successfully loaded data.
func (l *Loader[K, T]) Data() T {
	return l.State().Data
}

// Subscribe registers fn for state changes and returns a func that removes it.
func (l *Loader[K, T]) Subscribe(fn func(State[K, T])) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.listeners[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.listeners, id)
		l.mu.Unlock()
	}
}

func (l *Loader[K, T]) snapshotLocked() (State[K, T], []func(State[K, T])) {
	listeners := make([]func(State[K, T]), 0, len(l.listeners))
	for _, fn := range l.listeners {
		listeners = append(listeners, fn)
	}
	return l.state, listeners
}

func notify[S any](listeners []func(S), s S) {
	for _, fn := range listeners {
		fn(s)
	}
}
