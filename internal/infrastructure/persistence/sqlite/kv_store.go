package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/infrastructure/storage"
	"github.com/bnema/vitrine/internal/logging"
)

// DefaultMaxValueSize caps a single value, mirroring browser storage quotas.
const DefaultMaxValueSize = 64 * 1024

type kvStore struct {
	ctx          context.Context
	provider     port.DatabaseProvider
	maxValueSize int
}

// NewKeyValueStore creates a SQLite-backed key-value store. The store methods
// have no context parameter, so ctx is used for every query.
func NewKeyValueStore(ctx context.Context, provider port.DatabaseProvider) port.KeyValueStore {
	return &kvStore{ctx: ctx, provider: provider, maxValueSize: DefaultMaxValueSize}
}

func (s *kvStore) db() (*sql.DB, error) {
	if s.provider == nil {
		return nil, storage.ErrUnavailable
	}
	db, err := s.provider.DB(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}
	return db, nil
}

func (s *kvStore) GetItem(key string) (string, bool, error) {
	db, err := s.db()
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(s.ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *kvStore) SetItem(key, value string) error {
	if len(value) > s.maxValueSize {
		return fmt.Errorf("value for key %q is %d bytes: %w", key, len(value), storage.ErrQuotaExceeded)
	}

	db, err := s.db()
	if err != nil {
		return err
	}

	logging.FromContext(s.ctx).Debug().Str("key", key).Msg("writing key")

	_, err = db.ExecContext(s.ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) RemoveItem(key string) error {
	db, err := s.db()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(s.ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
