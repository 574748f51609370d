package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/memoclub/memocli/internal/client/store"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates, and refreshes the self
// record through the sign-in path so store state holds the merged record.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	raw, err := a.users.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if raw == nil {
		printlnFn("Sign-in did not return a user; session is signed out.")
		return nil
	}

	printlnFn("Signed in as", raw.Username)
	return nil
}

// Logout notifies the server, clears the local self record, and wipes
// the persisted preferences. The local clearing is deliberately done
// here: the sign-out operation's own contract is server notification
// only.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.SignOut(ctx); err != nil {
		return err
	}
	a.store.Dispatch(store.ClearUser{})
	if err := a.storage.Clear(ctx); err != nil {
		a.log.Warn(ctx, "clearing stored preferences", "error", err)
	}
	printlnFn("Signed out.")
	return nil
}

// Whoami prints the derived session view: mode, effective user id, and
// the merged profile when one is loaded.
func (a *App) Whoami(ctx context.Context) error {
	state := a.store.GetState()

	mode := "authenticated self"
	if a.session.IsVisitorMode() {
		mode = "visitor"
	}
	printlnFn("mode:", mode)
	printlnFn("effective user id:", a.session.EffectiveUserID())
	printlnFn("path:", a.currentPath())

	if a.client.SessionExpired() {
		printlnFn("note: the configured access token has expired")
	}

	if state.User == nil {
		return nil
	}
	u := state.User
	printlnFn(fmt.Sprintf("user: #%d %s <%s> nickname=%q", u.ID, u.Username, u.Email, u.Nickname))
	if u.Setting != nil {
		printlnFn(fmt.Sprintf("setting: locale=%s appearance=%s visibility=%s", u.Setting.Locale, u.Setting.Appearance, u.Setting.MemoVisibility))
		for k, v := range u.Setting.Extra {
			printlnFn(fmt.Sprintf("setting (extra): %s=%v", k, v))
		}
	}
	if u.LocalSetting != nil {
		printlnFn(fmt.Sprintf("local: doubleClickEditing=%t reviewOffset=%d autoCollapse=%t",
			u.LocalSetting.EnableDoubleClickEditing, u.LocalSetting.DailyReviewTimeOffset, u.LocalSetting.EnableAutoCollapse))
	}
	return nil
}
