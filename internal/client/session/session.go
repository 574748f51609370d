// Package session derives "who is the effective current user" from store
// state and the navigation context. The session mode — unauthenticated,
// visitor viewing someone else, or authenticated self — is never stored
// anywhere; it is recomputed from these inputs on every query.
package session

import (
	"regexp"
	"strconv"

	"github.com/memoclub/memocli/internal/client/models"
	"github.com/memoclub/memocli/internal/client/store"
)

var userPathPattern = regexp.MustCompile(`^/u/(\d+)`)

// UserIDFromPath parses a path like "/u/42/memos" and returns the viewed
// user id. ok is false when the path does not match the /u/{id} pattern.
func UserIDFromPath(path string) (int, bool) {
	m := userPathPattern.FindStringSubmatch(path)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// Locator exposes the current navigation path. It is polled, not
// subscribed: the path can change independently of store dispatches, so
// resolver queries re-read it every time.
type Locator interface {
	Path() string
}

// LocatorFunc adapts a plain function to Locator.
type LocatorFunc func() string

func (f LocatorFunc) Path() string { return f() }

// Resolver answers session-mode queries against a store and a locator.
// All queries are read-only, side-effect free, and uncached.
type Resolver struct {
	store   *store.Store
	locator Locator
}

func NewResolver(st *store.Store, locator Locator) *Resolver {
	return &Resolver{store: st, locator: locator}
}

// IsVisitorMode reports whether the viewer is not authenticated as the
// profile currently being viewed: true when no self record is loaded, and
// also when the path names a user other than the authenticated one.
func (r *Resolver) IsVisitorMode() bool {
	state := r.store.GetState()
	if state.User == nil {
		return true
	}
	if id, ok := r.pathUserID(); ok && id != state.User.ID {
		return true
	}
	return false
}

// EffectiveUserID returns the id whose content the viewer is looking at:
// in visitor mode the id from the path (or UnknownID when the path has
// none), otherwise the authenticated user's id.
func (r *Resolver) EffectiveUserID() int {
	if r.IsVisitorMode() {
		if id, ok := r.pathUserID(); ok {
			return id
		}
		return models.UnknownID
	}
	state := r.store.GetState()
	if state.User == nil {
		return models.UnknownID
	}
	return state.User.ID
}

// ViewedUserID returns the user id named by the current path, if any.
func (r *Resolver) ViewedUserID() (int, bool) {
	return r.pathUserID()
}

func (r *Resolver) pathUserID() (int, bool) {
	if r.locator == nil {
		return 0, false
	}
	return UserIDFromPath(r.locator.Path())
}
