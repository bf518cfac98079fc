package store

import (
	"sync"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// State is an immutable snapshot of the aggregate application state.
// Snapshots are values; retaining an old one is always safe.
type State struct {
	Favorites FavoritesState
	Auth      AuthState
	UI        UIState
}

// Listener is notified with the new snapshot after every dispatch
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Store is the process-wide state container. It is constructed once per
// application session and injected where needed; there is no package-level
// instance.
//
// Dispatch is single-writer: a mutex serializes dispatches, and listeners
// are notified synchronously in subscription order before the next dispatch
// is accepted. Listeners must not call Dispatch from within a notification.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   []subscription
	nextID int
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// State returns the current snapshot
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the action to every reducer, swaps the snapshot, and
// notifies subscribers exactly once. Reducers are total: no action fails.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(action)
}

func (s *Store) dispatchLocked(action Action) {
	s.state = State{
		Favorites: reduceFavorites(s.state.Favorites, action),
		Auth:      reduceAuth(s.state.Auth, action),
		UI:        reduceUI(s.state.UI, action),
	}

	metrics.DispatchTotal.WithLabelValues(action.kind()).Inc()
	logger.Logger.Debug().
		Str("action", action.kind()).
		Str("auth_status", s.state.Auth.Status.String()).
		Int("favorites", s.state.Favorites.Count()).
		Msg("Action dispatched")

	for _, sub := range s.subs {
		sub.fn(s.state)
	}
}

// Subscribe registers a listener invoked after every dispatch. The returned
// function removes the listener; calling it more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// ToggleFavorite removes the product from favorites when present, adds it
// otherwise. The check and the dispatch happen under one lock acquisition
// so concurrent toggles cannot interleave.
func (s *Store) ToggleFavorite(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Favorites.Contains(p.ID) {
		s.dispatchLocked(RemoveFavorite{ProductID: p.ID})
	} else {
		s.dispatchLocked(AddFavorite{Product: p})
	}
}
