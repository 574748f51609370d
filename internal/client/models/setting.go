package models

// Visibility is the default visibility applied to newly created memos.
type Visibility string

const (
	VisibilityPrivate   Visibility = "PRIVATE"
	VisibilityProtected Visibility = "PROTECTED"
	VisibilityPublic    Visibility = "PUBLIC"
)

// Setting is the normalized, server-backed settings object. It is always
// fully populated: any field absent from the raw entries keeps its
// default. Keys the client does not know about are still applied — they
// land in Extra with their decoded JSON value, so the server can
// introduce settings ahead of the client.
type Setting struct {
	Locale         string     `json:"locale"`
	Appearance     string     `json:"appearance"`
	MemoVisibility Visibility `json:"memoVisibility"`
	TelegramUserID string     `json:"telegramUserId"`

	Extra map[string]any `json:"extra,omitempty"`
}

// DefaultSetting returns a fresh copy of the fixed Setting defaults.
func DefaultSetting() *Setting {
	return &Setting{
		Locale:         "en",
		Appearance:     "system",
		MemoVisibility: VisibilityPrivate,
		TelegramUserID: "",
	}
}

// Clone returns a copy with its own Extra map.
func (s *Setting) Clone() *Setting {
	if s == nil {
		return nil
	}
	c := *s
	if s.Extra != nil {
		c.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

// LocalSetting holds client-only preferences. It is never sent to the
// server; persistent local storage is its single source of truth, and the
// merge keeps it strictly disjoint from the server-backed Setting.
type LocalSetting struct {
	EnableDoubleClickEditing bool `json:"enableDoubleClickEditing"`
	DailyReviewTimeOffset    int  `json:"dailyReviewTimeOffset"`
	EnableAutoCollapse       bool `json:"enableAutoCollapse"`
}

// DefaultLocalSetting returns a copy of the fixed LocalSetting defaults.
func DefaultLocalSetting() LocalSetting {
	return LocalSetting{
		EnableDoubleClickEditing: true,
		DailyReviewTimeOffset:    0,
		EnableAutoCollapse:       true,
	}
}

// LocalSettingPatch is the stored/partial form of LocalSetting. Pointer
// fields let an overlay distinguish "absent" from a stored zero value, so
// defaults survive a partial or null-laden record on disk.
type LocalSettingPatch struct {
	EnableDoubleClickEditing *bool `json:"enableDoubleClickEditing,omitempty"`
	DailyReviewTimeOffset    *int  `json:"dailyReviewTimeOffset,omitempty"`
	EnableAutoCollapse       *bool `json:"enableAutoCollapse,omitempty"`
}

// ApplyTo overlays the patch's present fields onto ls.
func (p *LocalSettingPatch) ApplyTo(ls *LocalSetting) {
	if p == nil || ls == nil {
		return
	}
	if p.EnableDoubleClickEditing != nil {
		ls.EnableDoubleClickEditing = *p.EnableDoubleClickEditing
	}
	if p.DailyReviewTimeOffset != nil {
		ls.DailyReviewTimeOffset = *p.DailyReviewTimeOffset
	}
	if p.EnableAutoCollapse != nil {
		ls.EnableAutoCollapse = *p.EnableAutoCollapse
	}
}
