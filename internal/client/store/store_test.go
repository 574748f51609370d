package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoclub/memocli/internal/client/models"
)

func TestStore_SetUserAndGetState(t *testing.T) {
	st := New()
	st.Dispatch(SetUser{User: &models.User{ID: 7, Username: "alice"}})

	state := st.GetState()
	require.NotNil(t, state.User)
	assert.Equal(t, 7, state.User.ID)
	assert.Equal(t, "alice", state.User.Username)
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	st := New()
	st.Dispatch(SetUser{User: &models.User{ID: 7, Nickname: "before"}})

	snap := st.GetState()
	snap.User.Nickname = "mutated"

	assert.Equal(t, "before", st.GetState().User.Nickname)
}

func TestStore_ClearUser(t *testing.T) {
	st := New()
	st.Dispatch(SetUser{User: &models.User{ID: 7}})
	st.Dispatch(ClearUser{})

	assert.Nil(t, st.GetState().User)
}

func TestStore_SetUserByIDUsesSeparateSlot(t *testing.T) {
	st := New()
	st.Dispatch(SetUser{User: &models.User{ID: 7}})
	st.Dispatch(SetUserByID{User: &models.User{ID: 42, Username: "bob"}})

	state := st.GetState()
	assert.Equal(t, 7, state.User.ID)
	require.Contains(t, state.ByID, 42)
	assert.Equal(t, "bob", state.ByID[42].Username)
	assert.NotContains(t, state.ByID, 7)
}

func TestStore_PatchUserLocalSettingOnly(t *testing.T) {
	st := New()
	st.Dispatch(SetUser{User: &models.User{
		ID:       7,
		Nickname: "alice",
		LocalSetting: &models.LocalSetting{
			EnableDoubleClickEditing: true,
		},
	}})

	st.Dispatch(PatchUser{LocalSetting: &models.LocalSetting{
		DailyReviewTimeOffset: 9,
	}})

	state := st.GetState()
	assert.Equal(t, "alice", state.User.Nickname)
	assert.Equal(t, 9, state.User.LocalSetting.DailyReviewTimeOffset)
}

func TestStore_PatchUserLocalSettingWithoutUserIsNoop(t *testing.T) {
	st := New()
	st.Dispatch(PatchUser{LocalSetting: &models.LocalSetting{DailyReviewTimeOffset: 9}})

	assert.Nil(t, st.GetState().User)
}

func TestStore_SubscribeSeesEveryDispatch(t *testing.T) {
	st := New()

	var seen []string
	st.Subscribe(func(s State) {
		seen = append(seen, s.Locale)
	})

	st.Dispatch(SetLocale{Locale: "en"})
	st.Dispatch(SetLocale{Locale: "de"})

	assert.Equal(t, []string{"en", "de"}, seen)
}

func TestStore_GlobalSlice(t *testing.T) {
	st := New()
	st.Dispatch(SetLocale{Locale: "fr"})
	st.Dispatch(SetAppearance{Appearance: "dark"})

	state := st.GetState()
	assert.Equal(t, "fr", state.Locale)
	assert.Equal(t, "dark", state.Appearance)
}

func TestStore_SetHost(t *testing.T) {
	st := New()
	st.Dispatch(SetHost{Host: &models.User{ID: 1, Role: models.RoleHost}})

	state := st.GetState()
	require.NotNil(t, state.Host)
	assert.Equal(t, models.RoleHost, state.Host.Role)
	assert.Nil(t, state.User)
}
