package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/memoclub/memocli/internal/client/models"
)

const localSettingKey = "local_setting"

// SQLiteRepository stores preferences as JSON blobs in a small kv table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) LocalSetting(ctx context.Context) (*models.LocalSettingPatch, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, localSettingKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", localSettingKey, err)
	}

	var patch models.LocalSettingPatch
	if err := json.Unmarshal(value, &patch); err != nil {
		return nil, fmt.Errorf("failed to decode kv[%s]: %w", localSettingKey, err)
	}
	return &patch, nil
}

func (r *SQLiteRepository) SetLocalSetting(ctx context.Context, ls models.LocalSetting) error {
	value, err := json.Marshal(ls)
	if err != nil {
		return fmt.Errorf("failed to encode kv[%s]: %w", localSettingKey, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, localSettingKey, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", localSettingKey, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}
