package sqlitestore

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/localstore"
)

type SettingsStore struct {
	db *sql.DB
}

func New(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key)
	var value string
	err := row.Scan(&value)
	return value, s.handleError(err)
}

func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO settings(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = unixepoch()`,
		key, value)
	return s.handleError(err)
}

// Delete is idempotent; removing an absent key is not an error.
func (s *SettingsStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return s.handleError(err)
}

// handleError takes a database error and returns a higher level error that hides
// the implementation details from the calling packages.
func (s *SettingsStore) handleError(err error) error {
	switch err {
	case nil:
		return nil
	case sql.ErrNoRows:
		return localstore.ErrNotFound
	default:
		log.Error().Err(err).Msg("settings store failure")
		return localstore.ErrInternal
	}
}
