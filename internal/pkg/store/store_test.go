package store

import (
	"context"
	"testing"

	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadSeedsAndPersists(t *testing.T) {
	kvs := kv.NewMemory()
	seed := []widget{{ID: "1", Name: "first"}}

	col, err := Load(kvs, "test:widgets", seed, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, seed, col.Items())

	// The seed is written through on first load.
	raw, ok, err := kvs.Get(context.Background(), "test:widgets")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","name":"first"}]`, raw)
}

func TestLoadRehydratesOverSeed(t *testing.T) {
	kvs := kv.NewMemory()
	require.NoError(t, kvs.Set(context.Background(), "test:widgets", `[{"id":"9","name":"stored"}]`))

	col, err := Load(kvs, "test:widgets", []widget{{ID: "1", Name: "seed"}}, zap.NewNop())
	require.NoError(t, err)

	items := col.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "9", items[0].ID)
}

func TestMutatePersistsSnapshot(t *testing.T) {
	kvs := kv.NewMemory()
	col, err := Load(kvs, "test:widgets", []widget{{ID: "1", Name: "first"}}, zap.NewNop())
	require.NoError(t, err)

	col.Mutate(func(items []widget) []widget {
		return append(items, widget{ID: "2", Name: "second"})
	})

	reloaded, err := Load[widget](kvs, "test:widgets", nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
}

func TestEmptySnapshotIsNotWritten(t *testing.T) {
	kvs := kv.NewMemory()
	col, err := Load(kvs, "test:widgets", []widget{{ID: "1", Name: "first"}}, zap.NewNop())
	require.NoError(t, err)

	col.Mutate(func([]widget) []widget { return nil })

	// The last non-empty snapshot survives in the store.
	raw, ok, err := kvs.Get(context.Background(), "test:widgets")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","name":"first"}]`, raw)
}

func TestFindAndFilter(t *testing.T) {
	kvs := kv.NewMemory()
	col, err := Load(kvs, "test:widgets", []widget{
		{ID: "1", Name: "alpha"},
		{ID: "2", Name: "beta"},
		{ID: "3", Name: "alpha"},
	}, zap.NewNop())
	require.NoError(t, err)

	w, ok := col.Find(func(w widget) bool { return w.Name == "beta" })
	require.True(t, ok)
	assert.Equal(t, "2", w.ID)

	_, ok = col.Find(func(w widget) bool { return w.Name == "gamma" })
	assert.False(t, ok)

	assert.Len(t, col.Filter(func(w widget) bool { return w.Name == "alpha" }), 2)
}
