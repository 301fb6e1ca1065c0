package models

import "time"

// Setting is a single key/value pair of shop configuration. Keys are
// persisted in snake_case; the API surface uses camelCase (see the
// settings service for the mapping).
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
