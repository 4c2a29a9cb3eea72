package kv

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value    string
	expireAt time.Time
}

// Memory is an in-process Store used by tests and throwaway setups.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: map[string]memoryEntry{}}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ent, ok := m.items[key]
	if !ok || ent.expired() {
		return "", false, nil
	}
	return ent.value, true, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = memoryEntry{value: value}
	return nil
}

func (m *Memory) SetTTL(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ent := memoryEntry{value: value}
	if ttl > 0 {
		ent.expireAt = time.Now().Add(ttl)
	}
	m.items[key] = ent
	return nil
}

func (m *Memory) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ent, ok := m.items[key]; ok && !ent.expired() {
		return false, nil
	}
	ent := memoryEntry{value: value}
	if ttl > 0 {
		ent.expireAt = time.Now().Add(ttl)
	}
	m.items[key] = ent
	return true, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *Memory) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k, ent := range m.items {
		if strings.HasPrefix(k, prefix) && !ent.expired() {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *Memory) Close() error { return nil }

func (e memoryEntry) expired() bool {
	return !e.expireAt.IsZero() && time.Now().After(e.expireAt)
}
