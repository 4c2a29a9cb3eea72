package settings

import (
	"testing"

	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	svc, err := NewService(kv.NewMemory(), nil, zap.NewNop())
	require.NoError(t, err)

	got := svc.Get()
	assert.Equal(t, "Majlis Kantho", got.SiteName)
	assert.Equal(t, 5, got.BreakingNewsCount)
	assert.True(t, got.EnableAISummaries)
	assert.Contains(t, got.Categories, "National")
	assert.Len(t, got.Categories, 9)
}

func TestPatchIsShallowMerge(t *testing.T) {
	svc, err := NewService(kv.NewMemory(), nil, zap.NewNop())
	require.NoError(t, err)

	tagline := "Fast. Fair. Fearless."
	count := 8
	got := svc.Patch(&PatchDTO{SiteTagline: &tagline, BreakingNewsCount: &count})

	assert.Equal(t, tagline, got.SiteTagline)
	assert.Equal(t, 8, got.BreakingNewsCount)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Majlis Kantho", got.SiteName)
	assert.True(t, got.EnableAISummaries)
}

func TestPatchTogglesMaintenanceMode(t *testing.T) {
	kvs := kv.NewMemory()
	svc, err := NewService(kvs, nil, zap.NewNop())
	require.NoError(t, err)
	require.False(t, svc.Get().IsMaintenanceMode)

	on := true
	got := svc.Patch(&PatchDTO{IsMaintenanceMode: &on})
	assert.True(t, got.IsMaintenanceMode)

	reopened, err := NewService(kvs, nil, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, reopened.Get().IsMaintenanceMode)
}

func TestPatchSurvivesRestart(t *testing.T) {
	kvs := kv.NewMemory()
	svc, err := NewService(kvs, nil, zap.NewNop())
	require.NoError(t, err)

	enabled := false
	svc.Patch(&PatchDTO{EnableAISummaries: &enabled})

	reopened, err := NewService(kvs, nil, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, reopened.AISummariesEnabled())
}

func TestCategoriesCopyIsIsolated(t *testing.T) {
	svc, err := NewService(kv.NewMemory(), nil, zap.NewNop())
	require.NoError(t, err)

	got := svc.Get()
	got.Categories[0] = "Mutated"
	assert.Equal(t, "National", svc.Get().Categories[0])
}
