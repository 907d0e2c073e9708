package models

import "gorm.io/gorm"

// SessionMemory stores per-session conversation state as key/value pairs.
// The serialized pending operation lives here under a well-known key,
// alongside any other transient session facts. Writes are last-write-wins;
// clearing a key writes an empty value rather than deleting the row.
type SessionMemory struct {
	gorm.Model

	SessionID string `json:"session_id" gorm:"uniqueIndex:idx_session_key;not null"`
	Key       string `json:"key" gorm:"uniqueIndex:idx_session_key;not null"`
	Value     string `json:"value" gorm:"type:text"`
}
