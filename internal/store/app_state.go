package store

import (
	"database/sql"
	"errors"
)

// App state keys
const (
	StateLastPaceText  = "last_pace_text"
	StateLastSpeedText = "last_speed_text"
	StateLastSource    = "last_source"
)

// GetState retrieves an app state value by key
// Returns empty string if key doesn't exist
func (s *Store) GetState(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM app_state WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// SetState sets an app state value
func (s *Store) SetState(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}
