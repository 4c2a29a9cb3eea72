// Package store implements the snapshot collection every domain store is
// built on: an in-memory slice that rewrites its whole JSON blob into the kv
// layer after each mutation, and rehydrates from it on startup.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/majlis-kantho/core/internal/pkg/kv"
	"go.uber.org/zap"
)

// Collection owns one entity slice and its persistence lifecycle.
type Collection[T any] struct {
	mu     sync.RWMutex
	kv     kv.Store
	key    string
	items  []T
	logger *zap.Logger
}

// Load rehydrates the collection from its persisted snapshot, falling back
// to seed when nothing was persisted yet. The seed is written through so the
// first run and every later run see the same state.
func Load[T any](kvs kv.Store, key string, seed []T, logger *zap.Logger) (*Collection[T], error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collection[T]{kv: kvs, key: key, logger: logger}

	raw, ok, err := kvs.Get(context.Background(), key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		c.items = seed
		c.persistLocked()
		return c, nil
	}
	if err := json.Unmarshal([]byte(raw), &c.items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return c, nil
}

// Items returns a copy of the current snapshot.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the first item matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every item matching pred, in collection order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Mutate replaces the slice with fn's result and re-persists the snapshot.
func (c *Collection[T]) Mutate(fn func(items []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
	c.persistLocked()
}

// persistLocked writes the full snapshot. Persistence is fire-and-forget:
// failures are logged, never propagated into the mutation path. An empty
// snapshot is not written, so a seeded collection cannot be clobbered by an
// empty first render.
func (c *Collection[T]) persistLocked() {
	if len(c.items) == 0 {
		return
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.logger.Error("snapshot marshal failed", zap.String("key", c.key), zap.Error(err))
		return
	}
	if err := c.kv.Set(context.Background(), c.key, string(raw)); err != nil {
		c.logger.Error("snapshot persist failed", zap.String("key", c.key), zap.Error(err))
	}
}
