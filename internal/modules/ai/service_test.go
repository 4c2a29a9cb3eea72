package ai

import (
	"context"
	"testing"

	"github.com/majlis-kantho/core/internal/config"
	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/settings"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, summariesEnabled bool) (*Service, kv.Store) {
	t.Helper()
	kvs := kv.NewMemory()
	st, err := settings.NewService(kvs, nil, zap.NewNop())
	require.NoError(t, err)
	if !summariesEnabled {
		enabled := false
		st.Patch(&settings.PatchDTO{EnableAISummaries: &enabled})
	}
	return NewService(&config.AIProvider{}, st, kvs, zap.NewNop()), kvs
}

func TestSummarizeDisabledReturnsFallback(t *testing.T) {
	svc, _ := newTestService(t, false)
	article := &models.ArticleModel{ID: "1", Title: "T", Text: "body"}

	got := svc.Summarize(context.Background(), article)
	assert.Equal(t, FallbackSummary, got.Summary)
	assert.False(t, got.Generated)
}

func TestSummarizeNilArticle(t *testing.T) {
	svc, _ := newTestService(t, true)
	got := svc.Summarize(context.Background(), nil)
	assert.Equal(t, FallbackSummary, got.Summary)
}

func TestSummarizeServesCachedResult(t *testing.T) {
	svc, kvs := newTestService(t, true)
	article := &models.ArticleModel{ID: "1", Title: "T", Text: "body"}

	// A cached summary short-circuits the provider entirely.
	key := summaryKeyPrefix + summaryHash(article)
	require.NoError(t, kvs.Set(context.Background(), key, "A cached summary."))

	got := svc.Summarize(context.Background(), article)
	assert.Equal(t, "A cached summary.", got.Summary)
	assert.True(t, got.Generated)
}

func TestSummarizeUnconfiguredProviderFallsBack(t *testing.T) {
	svc, _ := newTestService(t, true)
	article := &models.ArticleModel{ID: "1", Title: "T", Text: "body"}

	got := svc.Summarize(context.Background(), article)
	assert.Equal(t, FallbackSummary, got.Summary)
	assert.False(t, got.Generated)
}

func TestCacheKeyTracksContent(t *testing.T) {
	a := &models.ArticleModel{ID: "1", Title: "T", Text: "one"}
	b := &models.ArticleModel{ID: "1", Title: "T", Text: "two"}
	assert.NotEqual(t, summaryHash(a), summaryHash(b))
	assert.Equal(t, summaryHash(a), summaryHash(&models.ArticleModel{ID: "1", Title: "T", Text: "one"}))
}

func TestTrendingTopicsFallback(t *testing.T) {
	svc, _ := newTestService(t, false)
	topics := svc.TrendingTopics(context.Background(), []models.ArticleModel{{Title: "Headline"}})
	assert.Equal(t, []string{"Economy", "Cricket", "Politics", "Weather", "Education"}, topics)
}

func TestTrendingTopicsNoArticles(t *testing.T) {
	svc, _ := newTestService(t, true)
	topics := svc.TrendingTopics(context.Background(), nil)
	assert.Len(t, topics, 5)
}
