package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/memoclub/memocli/internal/client/models"
)

// Open changes the simulated navigation path and reports the resulting
// session view. Visitor mode and the effective user id are derived, never
// stored, so this only has to move the path.
func (a *App) Open(ctx context.Context, path string) error {
	a.setPath(path)

	if id, ok := a.session.ViewedUserID(); ok {
		printlnFn("Viewing user", id)
	}
	if a.session.IsVisitorMode() {
		printlnFn("Browsing as visitor; effective user id:", a.session.EffectiveUserID())
	}
	return nil
}

// Set writes one server-side setting. The value must be valid JSON — the
// same encoding the server stores — e.g. `set locale "de"` or
// `set memo-visibility "PUBLIC"`. The self record is refreshed through
// the merge afterwards.
func (a *App) Set(ctx context.Context, key, value string) error {
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return fmt.Errorf("value must be JSON (quote strings): %w", err)
	}
	if err := a.users.UpsertUserSetting(ctx, key, decoded); err != nil {
		return err
	}
	printlnFn("Setting saved.")
	return nil
}

// SetLocal updates one client-only preference. Fields: doubleclick,
// reviewoffset, autocollapse. Local-only — no network call is made.
func (a *App) SetLocal(ctx context.Context, field, value string) error {
	ls := models.DefaultLocalSetting()
	if state := a.store.GetState(); state.User != nil && state.User.LocalSetting != nil {
		ls = *state.User.LocalSetting
	}

	switch field {
	case "doubleclick":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		ls.EnableDoubleClickEditing = b
	case "reviewoffset":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid offset %q", value)
		}
		ls.DailyReviewTimeOffset = n
	case "autocollapse":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		ls.EnableAutoCollapse = b
	default:
		return fmt.Errorf("unknown local setting %q (doubleclick, reviewoffset, autocollapse)", field)
	}

	if err := a.users.UpsertLocalSetting(ctx, ls); err != nil {
		return err
	}
	printlnFn("Local setting saved.")
	return nil
}
