package ad

import (
	"testing"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(kv.NewMemory(), nil, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestByPositionFiltersActiveOnly(t *testing.T) {
	svc := newTestService(t)

	sidebar := svc.ByPosition(models.AdSidebar)
	require.Len(t, sidebar, 1)
	assert.Equal(t, "ad1", sidebar[0].ID)

	_, ok := svc.ToggleActive("ad1")
	require.True(t, ok)
	assert.Empty(t, svc.ByPosition(models.AdSidebar))

	// The full inventory still shows it.
	assert.Len(t, svc.List(), 2)
}

func TestCreate(t *testing.T) {
	svc := newTestService(t)
	created := svc.Create(&CreateAdDTO{
		Label:    "Eid Shopping Festival",
		Position: models.AdInContent,
		ImageURL: "https://example.com/banner.png",
		LinkURL:  "https://example.com",
		IsActive: true,
	})

	inContent := svc.ByPosition(models.AdInContent)
	require.Len(t, inContent, 1)
	assert.Equal(t, created.ID, inContent[0].ID)
}

func TestUpdateMovesPosition(t *testing.T) {
	svc := newTestService(t)
	pos := models.AdHeader
	updated, ok := svc.Update("ad1", &UpdateAdDTO{Position: &pos})
	require.True(t, ok)
	assert.Equal(t, models.AdHeader, updated.Position)

	assert.Empty(t, svc.ByPosition(models.AdSidebar))
	assert.Len(t, svc.ByPosition(models.AdHeader), 2)
}

func TestToggleUnknownID(t *testing.T) {
	svc := newTestService(t)
	_, ok := svc.ToggleActive("nope")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	require.True(t, svc.Delete("ad2"))
	assert.False(t, svc.Delete("ad2"))
	assert.Len(t, svc.List(), 1)
}
