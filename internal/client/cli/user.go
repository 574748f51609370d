package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/memoclub/memocli/internal/client/models"
)

// User fetches another user's record into the id-keyed cache and prints it.
func (a *App) User(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid user id %q", arg)
	}

	user, err := a.users.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		printlnFn("No such user.")
		return nil
	}
	printlnFn(fmt.Sprintf("user: #%d %s nickname=%q role=%s", user.ID, user.Username, user.Nickname, user.Role))
	return nil
}

// Nickname patches the self record's nickname.
func (a *App) Nickname(ctx context.Context, value string) error {
	return a.patchSelf(ctx, func(p *models.UserPatch) {
		p.Nickname = &value
	})
}

// Email patches the self record's email.
func (a *App) Email(ctx context.Context, value string) error {
	return a.patchSelf(ctx, func(p *models.UserPatch) {
		p.Email = &value
	})
}

// Password prompts for a new password and patches the self record. A
// successful change also fires the best-effort password notification
// inside the service.
func (a *App) Password(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	return a.patchSelf(ctx, func(p *models.UserPatch) {
		p.Password = &password
	})
}

// ResetOpenID asks the server to rotate the open-API token. The rotation
// notification fires from the service when the returned token differs.
func (a *App) ResetOpenID(ctx context.Context) error {
	reset := true
	return a.patchSelf(ctx, func(p *models.UserPatch) {
		p.ResetOpenID = &reset
	})
}

// Delete removes an account by id. No local state is touched.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid user id %q", arg)
	}
	if err := a.users.DeleteUser(ctx, models.UserDelete{ID: id}); err != nil {
		return err
	}
	printlnFn("Deleted user", id)
	return nil
}

func (a *App) patchSelf(ctx context.Context, fill func(*models.UserPatch)) error {
	state := a.store.GetState()
	if state.User == nil {
		return fmt.Errorf("not signed in")
	}

	patch := models.UserPatch{ID: state.User.ID}
	fill(&patch)

	if err := a.users.PatchUser(ctx, patch); err != nil {
		return err
	}
	printlnFn("Updated.")
	return nil
}
