package models

import "time"

// SessionModel is a persisted login session. It references a user by id and
// is invalidated when that user no longer exists.
type SessionModel struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"ua"`
	CreatedAt time.Time `json:"created"`
	LastSeen  time.Time `json:"last_seen"`
}
