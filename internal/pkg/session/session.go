// Package session stores login sessions in the kv layer, one record per key,
// so logout and user deletion can revoke tokens that are otherwise valid.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/pkg/kv"
)

const keyPrefix = "portal:session:"

// DefaultTTL is how long a session lives without explicit logout.
const DefaultTTL = 14 * 24 * time.Hour

// Issue creates and persists a new session record for the user.
func Issue(ctx context.Context, kvs kv.Store, userID, ip, ua string, ttl time.Duration) (*models.SessionModel, error) {
	now := time.Now()
	s := &models.SessionModel{
		ID:        models.NewID(),
		UserID:    userID,
		IP:        ip,
		UserAgent: ua,
		CreatedAt: now,
		LastSeen:  now,
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	if err := kvs.SetTTL(ctx, keyPrefix+s.ID, string(raw), ttl); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the session record, or nil when it is expired or revoked.
func Get(ctx context.Context, kvs kv.Store, sessionID string) (*models.SessionModel, error) {
	raw, ok, err := kvs.Get(ctx, keyPrefix+sessionID)
	if err != nil || !ok {
		return nil, err
	}
	var s models.SessionModel
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Touch refreshes the last-seen timestamp, keeping the stored TTL window.
func Touch(ctx context.Context, kvs kv.Store, sessionID string) {
	s, err := Get(ctx, kvs, sessionID)
	if err != nil || s == nil {
		return
	}
	s.LastSeen = time.Now()
	if raw, err := json.Marshal(s); err == nil {
		_ = kvs.SetTTL(ctx, keyPrefix+s.ID, string(raw), DefaultTTL)
	}
}

// Revoke deletes the persisted session record.
func Revoke(ctx context.Context, kvs kv.Store, sessionID string) error {
	return kvs.Delete(ctx, keyPrefix+sessionID)
}
