// Package storage persists client-only preferences. It is the single
// source of truth for LocalSetting; server-backed settings never pass
// through here.
package storage

import (
	"context"

	"github.com/memoclub/memocli/internal/client/models"
)

// Repository reads and writes the persisted LocalSetting.
type Repository interface {
	// LocalSetting returns the stored patch, or nil when nothing has
	// been stored yet. The patch may be partial; overlay semantics are
	// the caller's concern.
	LocalSetting(ctx context.Context) (*models.LocalSettingPatch, error)
	// SetLocalSetting stores the full local setting, replacing any
	// previous value.
	SetLocalSetting(ctx context.Context, ls models.LocalSetting) error
	// Clear wipes the stored preferences.
	Clear(ctx context.Context) error
}
