// Package store holds the client's in-memory session state behind a
// dispatch/subscribe surface. It owns the canonical user records: the
// authenticated self, the pre-seeded host, and an id-keyed cache of other
// users, plus the global locale/appearance slice.
package store

import (
	"sync"

	"github.com/memoclub/memocli/internal/client/models"
)

// State is a snapshot of the session store. GetState returns copies, so
// holders of a snapshot never observe later dispatches.
type State struct {
	// User is the authenticated self record, nil when signed out.
	User *models.User
	// Host is the instance owner record seeded from system status.
	Host *models.User
	// ByID caches normalized records of other users, keyed by id.
	ByID map[int]*models.User

	Locale     string
	Appearance string
}

// Action mutates store state inside a dispatch. Concrete actions are the
// only way to change the store; readers go through GetState.
type Action interface {
	apply(s *State)
}

// Store serializes dispatches with a mutex. Overlapping asynchronous
// operations therefore resolve last-dispatch-wins; no versioning is
// attempted on top of that.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []func(State)
}

func New() *Store {
	return &Store{state: State{ByID: make(map[int]*models.User)}}
}

// Dispatch applies the action and notifies subscribers with the resulting
// snapshot. Subscribers run synchronously on the dispatching goroutine.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.mu.Lock()
	a.apply(&s.state)
	snapshot := s.snapshotLocked()
	subs := make([]func(State), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// GetState returns a snapshot of the current state.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every dispatch. There is no
// unsubscribe; the store lives as long as the app.
func (s *Store) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.User = s.state.User.Clone()
	snap.Host = s.state.Host.Clone()
	snap.ByID = make(map[int]*models.User, len(s.state.ByID))
	for id, u := range s.state.ByID {
		snap.ByID[id] = u.Clone()
	}
	return snap
}

// SetUser installs the authenticated self record.
type SetUser struct{ User *models.User }

func (a SetUser) apply(s *State) { s.User = a.User.Clone() }

// ClearUser drops the authenticated self record (local sign-out).
type ClearUser struct{}

func (ClearUser) apply(s *State) { s.User = nil }

// SetHost installs the instance owner record.
type SetHost struct{ Host *models.User }

func (a SetHost) apply(s *State) { s.Host = a.Host.Clone() }

// SetUserByID caches a normalized record in the id-keyed slot, distinct
// from the self slot.
type SetUserByID struct{ User *models.User }

func (a SetUserByID) apply(s *State) {
	if a.User == nil {
		return
	}
	if s.ByID == nil {
		s.ByID = make(map[int]*models.User)
	}
	s.ByID[a.User.ID] = a.User.Clone()
}

// PatchUser overlays fields of the current self record. A nil User with a
// non-nil LocalSetting patches only the local preferences; a full User
// replaces the record (the service dispatches freshly normalized records,
// never field-by-field edits of server data).
type PatchUser struct {
	User         *models.User
	LocalSetting *models.LocalSetting
}

func (a PatchUser) apply(s *State) {
	if a.User != nil {
		s.User = a.User.Clone()
		return
	}
	if a.LocalSetting != nil && s.User != nil {
		u := s.User.Clone()
		ls := *a.LocalSetting
		u.LocalSetting = &ls
		s.User = u
	}
}

// SetLocale updates the global locale slice.
type SetLocale struct{ Locale string }

func (a SetLocale) apply(s *State) { s.Locale = a.Locale }

// SetAppearance updates the global appearance slice.
type SetAppearance struct{ Appearance string }

func (a SetAppearance) apply(s *State) { s.Appearance = a.Appearance }
