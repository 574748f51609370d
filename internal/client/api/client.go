// Package api is the transport layer: the Client contract the session
// services depend on, plus its HTTP implementation against the memo
// service's JSON API.
package api

import (
	"context"

	"github.com/memoclub/memocli/internal/client/models"
)

// Client is the remote API surface consumed by the session services.
//
// All calls honor ctx and are single-attempt: transport failures are
// returned to the caller unretried. "No such user" and "not signed in"
// are not errors — GetMyselfUser and GetUserByID return (nil, nil) for
// them, and callers branch on the nil record.
type Client interface {
	// GetMyselfUser fetches the authoritative current-user record.
	// Returns (nil, nil) when the session is not authenticated.
	GetMyselfUser(ctx context.Context) (*models.User, error)
	// GetUserById fetches a user by id; (nil, nil) when absent.
	GetUserById(ctx context.Context, id int) (*models.User, error)
	// PatchUser applies a partial profile update and returns the
	// resulting record.
	PatchUser(ctx context.Context, patch models.UserPatch) (*models.User, error)
	// UpsertUserSetting writes one raw setting entry for the current user.
	UpsertUserSetting(ctx context.Context, upsert models.UserSettingUpsert) error
	// DeleteUser removes the addressed account.
	DeleteUser(ctx context.Context, del models.UserDelete) error
	// SignIn authenticates with username/password and returns the
	// signed-in user record.
	SignIn(ctx context.Context, username, password string) (*models.User, error)
	// SignOut invalidates the server-side session.
	SignOut(ctx context.Context) error
	// GetSystemStatus fetches instance status, including the host record.
	GetSystemStatus(ctx context.Context) (*models.SystemStatus, error)

	Close() error
}
