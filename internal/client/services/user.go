// Package services contains the application services of the memo client.
// This file defines the user service: session bootstrap, sign-in/out,
// profile mutation, and per-user setting storage. Every successful
// mutation ends by dispatching a freshly normalized record into the
// store, so reads always see merged state.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/memoclub/memocli/internal/client/api"
	"github.com/memoclub/memocli/internal/client/models"
	"github.com/memoclub/memocli/internal/client/notify"
	"github.com/memoclub/memocli/internal/client/settings"
	"github.com/memoclub/memocli/internal/client/storage"
	"github.com/memoclub/memocli/internal/client/store"
	"github.com/memoclub/memocli/internal/logging"
)

// notifyTimeout bounds each detached credential notification.
const notifyTimeout = 10 * time.Second

// UserService coordinates session mutations.
//
// Contract:
//   - InitialState: seed the host record and probe authentication.
//   - SignIn: refresh the canonical self record from the server.
//   - Login: authenticate with credentials, then refresh.
//   - SignOut: notify the server; local state clearing is the caller's job.
//   - GetUserByID: fetch, normalize, and cache another user's record.
//   - UpsertUserSetting: write one server-side setting, then refresh.
//   - UpsertLocalSetting: persist client-only preferences; no network.
//   - PatchUser: apply a profile patch and fire credential-rotation
//     notifications when the open-API token changes.
//   - DeleteUser: remove an account.
//
// Operations are single-attempt and honor ctx. Overlapping calls are not
// serialized against each other: the last dispatch to complete determines
// final store state.
type UserService interface {
	InitialState(ctx context.Context) error
	SignIn(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	SignOut(ctx context.Context) error
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpsertUserSetting(ctx context.Context, key string, value any) error
	UpsertLocalSetting(ctx context.Context, ls models.LocalSetting) error
	PatchUser(ctx context.Context, patch models.UserPatch) error
	DeleteUser(ctx context.Context, del models.UserDelete) error
}

type userService struct {
	client     api.Client
	store      *store.Store
	storage    storage.Repository
	normalizer *settings.Normalizer
	notifier   notify.Sender
	log        logging.Logger
}

// NewUserService constructs a UserService bound to the given transport,
// store, and local storage handles.
func NewUserService(client api.Client, st *store.Store, repo storage.Repository, notifier notify.Sender, log logging.Logger) UserService {
	return &userService{
		client:     client,
		store:      st,
		storage:    repo,
		normalizer: settings.NewNormalizer(repo),
		notifier:   notifier,
		log:        log,
	}
}

// InitialState bootstraps the session: it seeds the host record from
// system status, then probes for an authenticated user. Unlike SignIn,
// an unauthenticated probe here is a quiet no-op without the sign-out
// side effect; a fresh startup must not call out to invalidate a session
// it never had. When a user comes back authenticated, locale and
// appearance from the merged setting are pushed into the global slice.
func (s *userService) InitialState(ctx context.Context) error {
	status, err := s.client.GetSystemStatus(ctx)
	if err != nil {
		return fmt.Errorf("fetch system status: %w", err)
	}
	if status != nil && status.Host != nil {
		host, err := s.normalizer.Normalize(ctx, status.Host)
		if err != nil {
			return fmt.Errorf("normalize host: %w", err)
		}
		s.store.Dispatch(store.SetHost{Host: host})
	}

	raw, err := s.client.GetMyselfUser(ctx)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	user, err := s.normalizer.Normalize(ctx, raw)
	if err != nil {
		return err
	}
	s.store.Dispatch(store.SetUser{User: user})

	if user.Setting != nil {
		if locale := user.Setting.Locale; locale != "" {
			s.store.Dispatch(store.SetLocale{Locale: locale})
		}
		if appearance := user.Setting.Appearance; appearance != "" {
			s.store.Dispatch(store.SetAppearance{Appearance: appearance})
		}
	}
	return nil
}

// SignIn fetches the authoritative current-user record. On success the
// normalized record becomes the canonical self record and the raw record
// is returned. A response without a user means "not authenticated": the
// sign-out side effect fires and (nil, nil) is returned.
func (s *userService) SignIn(ctx context.Context) (*models.User, error) {
	raw, err := s.client.GetMyselfUser(ctx)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		if err := s.SignOut(ctx); err != nil {
			s.log.Warn(ctx, "sign-out after empty sign-in failed", "error", err)
		}
		return nil, nil
	}

	user, err := s.normalizer.Normalize(ctx, raw)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(store.SetUser{User: user})
	return raw, nil
}

// Login authenticates with credentials and then refreshes the self record
// through SignIn, so the resulting store state went through the merge.
func (s *userService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if _, err := s.client.SignIn(ctx, username, password); err != nil {
		return nil, err
	}
	return s.SignIn(ctx)
}

// SignOut notifies the server. It deliberately leaves store state alone;
// clearing the self record is the caller's decision.
func (s *userService) SignOut(ctx context.Context) error {
	return s.client.SignOut(ctx)
}

// GetUserByID fetches and normalizes a user record into the id-keyed
// cache, distinct from the self slot. Absent users return (nil, nil)
// without a dispatch.
func (s *userService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	raw, err := s.client.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	user, err := s.normalizer.Normalize(ctx, raw)
	if err != nil {
		return nil, err
	}
	s.store.Dispatch(store.SetUserByID{User: user})
	return user, nil
}

// UpsertUserSetting JSON-encodes value, writes it as one raw entry under
// key, and refreshes the self record so the new value round-trips through
// normalization instead of being patched locally ad hoc.
func (s *userService) UpsertUserSetting(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}
	if err := s.client.UpsertUserSetting(ctx, models.UserSettingUpsert{Key: key, Value: string(raw)}); err != nil {
		return err
	}
	_, err = s.SignIn(ctx)
	return err
}

// UpsertLocalSetting writes the preferences to persistent storage and
// patches the in-memory self record. Local-only: no network call.
func (s *userService) UpsertLocalSetting(ctx context.Context, ls models.LocalSetting) error {
	if err := s.storage.SetLocalSetting(ctx, ls); err != nil {
		return err
	}
	s.store.Dispatch(store.PatchUser{LocalSetting: &ls})
	return nil
}

// PatchUser applies a partial profile update. The response is normalized
// and dispatched only when the patch targets the authenticated self. When
// the open-API token changed, a rotation notification fires with the
// old/new pair; when the patch carried a password, a second notification
// fires with the new token and password. Both are detached best-effort
// calls whose outcome never affects this method's result.
func (s *userService) PatchUser(ctx context.Context, patch models.UserPatch) error {
	var oldOpenAPI string
	if state := s.store.GetState(); state.User != nil {
		oldOpenAPI = state.User.OpenID
	}

	data, err := s.client.PatchUser(ctx, patch)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("patch user %d: empty response", patch.ID)
	}

	state := s.store.GetState()
	if state.User == nil || patch.ID != state.User.ID {
		return nil
	}

	user, err := s.normalizer.Normalize(ctx, data)
	if err != nil {
		return err
	}
	s.store.Dispatch(store.PatchUser{User: user})

	if oldOpenAPI != data.OpenID {
		s.detachNotify("open-api rotation", func(nctx context.Context) error {
			return s.notifier.OpenAPIRotated(nctx, oldOpenAPI, data.OpenID)
		})
	}
	if patch.Password != nil {
		password := *patch.Password
		s.detachNotify("password change", func(nctx context.Context) error {
			return s.notifier.PasswordChanged(nctx, data.OpenID, password)
		})
	}
	return nil
}

// DeleteUser removes the addressed account. No store update is implied.
func (s *userService) DeleteUser(ctx context.Context, del models.UserDelete) error {
	return s.client.DeleteUser(ctx, del)
}

// detachNotify runs a side-channel notification on its own goroutine and
// context. Failures are swallowed by contract; they only leave a debug
// trace.
func (s *userService) detachNotify(name string, fn func(ctx context.Context) error) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.log.Debug(ctx, "credential notification failed", "kind", name, "error", err)
		}
	}()
}
