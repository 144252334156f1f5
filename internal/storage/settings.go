package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Setting keys used by the arcade.
const (
	SettingMuted = "muted"
	SettingTheme = "theme"
)

// Setting returns the stored value for key and whether it exists.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// BoolSetting returns the boolean stored under key, or def when unset or unparsable.
func (s *Store) BoolSetting(key string, def bool) (bool, error) {
	value, ok, err := s.Setting(key)
	if err != nil || !ok {
		return def, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def, nil
	}
	return b, nil
}

// SetBoolSetting stores a boolean under key.
func (s *Store) SetBoolSetting(key string, value bool) error {
	return s.SetSetting(key, strconv.FormatBool(value))
}
