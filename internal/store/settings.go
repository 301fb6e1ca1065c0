package store

import (
	"database/sql"
	"fmt"
)

type Settings struct {
	db *sql.DB
}

// All returns every stored setting keyed by its persisted snake_case name.
func (s *Settings) All() (map[string]string, error) {
	rows, err := s.db.Query("SELECT setting_key, setting_value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settings: %w", err)
	}
	return settings, nil
}

// Upsert creates the key if absent, otherwise overwrites its value, and
// returns the value as persisted.
func (s *Settings) Upsert(key, value string) (string, error) {
	_, err := s.db.Exec(
		`INSERT INTO settings (setting_key, setting_value) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)`,
		key, value,
	)
	if err != nil {
		return "", fmt.Errorf("upsert setting %q: %w", key, err)
	}

	var stored string
	if err := s.db.QueryRow("SELECT setting_value FROM settings WHERE setting_key = ?", key).Scan(&stored); err != nil {
		return "", fmt.Errorf("read back setting %q: %w", key, err)
	}
	return stored, nil
}
