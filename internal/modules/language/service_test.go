package language

import (
	"testing"

	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, kvs kv.Store) *Service {
	t.Helper()
	svc, err := NewService(kvs, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestDefaultLocaleIsEnglish(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	assert.Equal(t, "en", svc.Current())
}

func TestTables(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())

	assert.Equal(t, "Home", svc.Table("en").Home)
	assert.Equal(t, "প্রচ্ছদ", svc.Table("bn").Home)
	assert.Equal(t, "الرئيسية", svc.Table("ar").Home)
	assert.Equal(t, "জাতীয়", svc.Table("bn").Categories["National"])

	// Unknown locales fall back to the default table.
	assert.Equal(t, "Home", svc.Table("fr").Home)
}

func TestSetCurrentPersists(t *testing.T) {
	kvs := kv.NewMemory()
	svc := newTestService(t, kvs)

	require.NoError(t, svc.SetCurrent("bn"))
	assert.Equal(t, "bn", svc.Current())

	reopened := newTestService(t, kvs)
	assert.Equal(t, "bn", reopened.Current())
}

func TestSetCurrentRejectsUnknown(t *testing.T) {
	svc := newTestService(t, kv.NewMemory())
	assert.Error(t, svc.SetCurrent("de"))
	assert.Equal(t, "en", svc.Current())
}

func TestIsRTL(t *testing.T) {
	assert.True(t, IsRTL("ar"))
	assert.False(t, IsRTL("bn"))
	assert.False(t, IsRTL("en"))
}
