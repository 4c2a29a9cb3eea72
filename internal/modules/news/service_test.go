package news

import (
	"testing"

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

func TestSeededArticles(t *testing.T) {
	svc := newTestService(t)
	items := svc.List()
	require.Len(t, items, 3)

	featured := svc.Featured()
	require.NotNil(t, featured)
	assert.Equal(t, "1", featured.ID)
	assert.True(t, featured.IsBreaking)
}

func TestCreatePrependsNewest(t *testing.T) {
	svc := newTestService(t)
	created := svc.Create(&CreateArticleDTO{
		Title:    "Flood warning issued for northern districts",
		Text:     "Water levels keep rising.",
		Category: "National",
	})

	items := svc.List()
	require.Len(t, items, 4)
	assert.Equal(t, created.ID, items[0].ID)
	assert.NotNil(t, items[0].Tags)
}

func TestFeaturedIsExclusiveOnCreate(t *testing.T) {
	svc := newTestService(t)
	created := svc.Create(&CreateArticleDTO{
		Title:      "Budget session opens",
		Text:       "Parliament convenes.",
		Category:   "Politics",
		IsFeatured: true,
	})

	count := 0
	for _, a := range svc.List() {
		if a.IsFeatured {
			count++
			assert.Equal(t, created.ID, a.ID)
		}
	}
	assert.Equal(t, 1, count)
}

func TestFeaturedIsExclusiveOnUpdate(t *testing.T) {
	svc := newTestService(t)
	featured := true
	updated, ok := svc.Update("3", &UpdateArticleDTO{IsFeatured: &featured})
	require.True(t, ok)
	assert.True(t, updated.IsFeatured)

	count := 0
	for _, a := range svc.List() {
		if a.IsFeatured {
			count++
			assert.Equal(t, "3", a.ID)
		}
	}
	assert.Equal(t, 1, count)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc := newTestService(t)
	before, ok := svc.GetByID("2")
	require.True(t, ok)

	title := "Metro Rail expansion reaches Uttara North"
	updated, ok := svc.Update("2", &UpdateArticleDTO{Title: &title})
	require.True(t, ok)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, before.Author, updated.Author)
	assert.Equal(t, before.Category, updated.Category)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(t)
	title := "x"
	_, ok := svc.Update("does-not-exist", &UpdateArticleDTO{Title: &title})
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	require.True(t, svc.Delete("2"))
	assert.False(t, svc.Delete("2"))

	_, ok := svc.GetByID("2")
	assert.False(t, ok)
}

func TestBreakingCap(t *testing.T) {
	svc := newTestService(t)
	for i := 0; i < 6; i++ {
		svc.Create(&CreateArticleDTO{
			Title:      "Breaking item",
			Text:       "body",
			Category:   "National",
			IsBreaking: true,
		})
	}
	assert.Len(t, svc.Breaking(5), 5)
	assert.GreaterOrEqual(t, len(svc.Breaking(0)), 6)
}

func TestByCategory(t *testing.T) {
	svc := newTestService(t)
	sports := svc.ByCategory("Sports")
	require.Len(t, sports, 1)
	assert.Equal(t, "3", sports[0].ID)

	assert.Empty(t, svc.ByCategory("Opinion"))
}

func TestStateSurvivesRestart(t *testing.T) {
	kvs := kv.NewMemory()
	svc, err := NewService(kvs, nil, zap.NewNop())
	require.NoError(t, err)
	created := svc.Create(&CreateArticleDTO{
		Title:    "Exports hit record high",
		Text:     "Garment shipments grew.",
		Category: "Economy",
	})

	reopened, err := NewService(kvs, nil, zap.NewNop())
	require.NoError(t, err)
	got, ok := reopened.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.Title, got.Title)
	assert.Len(t, reopened.List(), 4)
}
