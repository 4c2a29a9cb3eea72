package search

import (
	"testing"

	"github.com/majlis-kantho/core/internal/modules/news"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	newsSvc, err := news.NewService(kv.NewMemory(), nil, zap.NewNop())
	require.NoError(t, err)
	return NewService(newsSvc)
}

func TestQueryMatchesTitleCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	results := svc.Query("metro")
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].ID)
}

func TestQueryMatchesBodyAndTags(t *testing.T) {
	svc := newTestService(t)
	assert.NotEmpty(t, svc.Query("cricket"))
}

func TestQueryNoMatch(t *testing.T) {
	svc := newTestService(t)
	assert.Empty(t, svc.Query("zzz-no-such-term"))
}

func TestEmptyQueryReturnsAll(t *testing.T) {
	svc := newTestService(t)
	assert.Len(t, svc.Query("   "), 3)
}
