// Package models defines the user, setting, and patch types the client
// exchanges with the memo service and keeps in its session store.
package models

// UnknownID is the sentinel user id used when no real id can be resolved,
// e.g. an unauthenticated viewer on a page without a /u/{id} path.
const UnknownID = -2

// Role classifies a user account on the server.
type Role string

const (
	RoleHost   Role = "HOST"
	RoleAdmin  Role = "ADMIN"
	RoleUser   Role = "USER"
	RoleNormal Role = "NORMAL"
)

// RowStatus mirrors the server-side soft-delete flag.
type RowStatus string

const (
	RowStatusNormal   RowStatus = "NORMAL"
	RowStatusArchived RowStatus = "ARCHIVED"
)

// UserSetting is the server's raw representation of one per-user setting:
// a key plus a JSON-encoded value string. Many entries belong to one user;
// the merge step decodes them onto the normalized Setting.
type UserSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// User is the identity and profile record.
//
// CreatedTs/UpdatedTs arrive from the server in seconds and are converted
// to milliseconds exactly once, during normalization. Setting and
// LocalSetting are nil on a raw wire record and populated by the merge;
// a User is never mutated in place — every transformation produces a new
// record that is dispatched into the store.
type User struct {
	ID        int       `json:"id"`
	RowStatus RowStatus `json:"rowStatus"`
	CreatedTs int64     `json:"createdTs"`
	UpdatedTs int64     `json:"updatedTs"`

	Username        string        `json:"username"`
	Role            Role          `json:"role"`
	Email           string        `json:"email"`
	Nickname        string        `json:"nickname"`
	AvatarURL       string        `json:"avatarUrl"`
	OpenID          string        `json:"openId"`
	UserSettingList []UserSetting `json:"userSettingList"`

	Setting      *Setting      `json:"setting,omitempty"`
	LocalSetting *LocalSetting `json:"localSetting,omitempty"`
}

// Clone returns a shallow copy of the user with its own copies of the
// attached Setting and LocalSetting, so a normalized record can be
// dispatched without aliasing the input.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Setting != nil {
		s := u.Setting.Clone()
		c.Setting = s
	}
	if u.LocalSetting != nil {
		ls := *u.LocalSetting
		c.LocalSetting = &ls
	}
	return &c
}

// UserPatch is a partial profile update. Nil fields are left untouched by
// the server. ID addresses the target account.
type UserPatch struct {
	ID int `json:"id"`

	RowStatus   *RowStatus `json:"rowStatus,omitempty"`
	Username    *string    `json:"username,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Nickname    *string    `json:"nickname,omitempty"`
	Password    *string    `json:"password,omitempty"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	ResetOpenID *bool      `json:"resetOpenId,omitempty"`
}

// UserDelete addresses an account for deletion.
type UserDelete struct {
	ID int `json:"id"`
}

// UserSettingUpsert is the wire form of one setting write. Value must be
// JSON-encoded by the caller.
type UserSettingUpsert struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SystemStatus is the subset of the server status payload the session
// layer consumes: the pre-seeded host user record.
type SystemStatus struct {
	Host *User `json:"host"`
}
