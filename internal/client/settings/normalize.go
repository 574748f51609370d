// Package settings implements the merge protocol that turns a raw user
// record from the wire into a fully populated session record: fixed
// defaults, locally persisted preferences, and the server's raw setting
// entries combined into one normalized Setting/LocalSetting pair.
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stoewer/go-strcase"

	"github.com/memoclub/memocli/internal/client/models"
)

// LocalSource reads the locally persisted LocalSetting patch. A nil patch
// means nothing has been stored yet and the defaults stand as-is.
type LocalSource interface {
	LocalSetting(ctx context.Context) (*models.LocalSettingPatch, error)
}

// Normalizer merges raw user records. It reads local storage but never
// writes it and never dispatches; normalization is idempotent for the
// Setting/LocalSetting values given stable storage contents.
type Normalizer struct {
	local LocalSource
}

func NewNormalizer(local LocalSource) *Normalizer {
	return &Normalizer{local: local}
}

// Normalize builds a new user record from raw:
//
//  1. Setting starts as a full copy of the fixed defaults.
//  2. LocalSetting starts from its defaults and is overlaid with the
//     stored patch (defaults-then-override, so absent stored fields keep
//     their defaults).
//  3. Raw entries are applied in list order: the key is converted to
//     lowerCamel, the value JSON-decoded, and the result written onto the
//     Setting. Known keys hit the typed fields, unknown keys land in
//     Extra opaquely. Last write for a key wins.
//  4. The timestamps are converted from seconds to milliseconds. This is
//     the single place that conversion happens.
//
// A malformed JSON value in any entry fails the whole call; there is no
// partial-entry recovery. An absent entry list is valid and yields the
// defaults plus stored local preferences.
func (n *Normalizer) Normalize(ctx context.Context, raw *models.User) (*models.User, error) {
	if raw == nil {
		return nil, fmt.Errorf("normalize: nil user")
	}

	setting := models.DefaultSetting()

	local := models.DefaultLocalSetting()
	if n.local != nil {
		patch, err := n.local.LocalSetting(ctx)
		if err != nil {
			return nil, fmt.Errorf("normalize: read local setting: %w", err)
		}
		patch.ApplyTo(&local)
	}

	for _, entry := range raw.UserSettingList {
		if err := applyEntry(setting, entry); err != nil {
			return nil, err
		}
	}

	user := raw.Clone()
	user.Setting = setting
	user.LocalSetting = &local
	user.CreatedTs = raw.CreatedTs * 1000
	user.UpdatedTs = raw.UpdatedTs * 1000
	return user, nil
}

// applyEntry decodes one raw entry onto the setting. Keys outside the
// canonical set are accepted opaquely rather than validated, preserving
// the server's freedom to introduce settings the client does not know.
func applyEntry(setting *models.Setting, entry models.UserSetting) error {
	key := strcase.LowerCamelCase(entry.Key)

	switch key {
	case "locale":
		return decodeEntry(entry, &setting.Locale)
	case "appearance":
		return decodeEntry(entry, &setting.Appearance)
	case "memoVisibility":
		return decodeEntry(entry, &setting.MemoVisibility)
	case "telegramUserId":
		return decodeEntry(entry, &setting.TelegramUserID)
	default:
		var value any
		if err := decodeEntry(entry, &value); err != nil {
			return err
		}
		if setting.Extra == nil {
			setting.Extra = make(map[string]any)
		}
		setting.Extra[key] = value
		return nil
	}
}

func decodeEntry(entry models.UserSetting, dst any) error {
	if err := json.Unmarshal([]byte(entry.Value), dst); err != nil {
		return fmt.Errorf("normalize: setting %q: %w", entry.Key, err)
	}
	return nil
}

// RawEntries re-encodes a normalized Setting as server-shaped entries.
// Useful for round-trip checks and for callers that need to replay a
// merged setting back through the wire format.
func RawEntries(s *models.Setting) ([]models.UserSetting, error) {
	if s == nil {
		return nil, nil
	}
	entries := make([]models.UserSetting, 0, 4+len(s.Extra))
	add := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode setting %q: %w", key, err)
		}
		entries = append(entries, models.UserSetting{Key: key, Value: string(b)})
		return nil
	}
	if err := add("locale", s.Locale); err != nil {
		return nil, err
	}
	if err := add("appearance", s.Appearance); err != nil {
		return nil, err
	}
	if err := add("memo-visibility", s.MemoVisibility); err != nil {
		return nil, err
	}
	if err := add("telegram-user-id", s.TelegramUserID); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if err := add(k, v); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
