// Package kv is the persistence layer: a string-keyed blob store holding one
// JSON snapshot per collection, the way the original deployment kept them.
// Backends: badger (embedded, the default), redis (shared), memory (tests).
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownDriver is returned by Open for an unrecognized driver name.
var ErrUnknownDriver = errors.New("kv: unknown driver")

// Store is a string-keyed blob store. Get reports presence explicitly so an
// empty value and a missing key stay distinguishable.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// SetTTL stores a value that expires after ttl (0 means no expiry).
	SetTTL(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX stores the value only if the key is absent and reports whether it did.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	// Keys returns all keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Driver   string // "badger" | "redis" | "memory"
	Path     string // badger data directory
	RedisURL string
}

// Open creates the configured Store.
func Open(opts Options) (Store, error) {
	switch opts.Driver {
	case "", "badger":
		return OpenBadger(opts.Path)
	case "redis":
		return OpenRedis(opts.RedisURL)
	case "memory":
		return NewMemory(), nil
	}
	return nil, ErrUnknownDriver
}
