package backup

import (
	"context"
	"testing"

	"github.com/majlis-kantho/core/internal/config"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportCollectsDurableSnapshots(t *testing.T) {
	kvs := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, kvs.Set(ctx, "portal:news", `[{"id":"1"}]`))
	require.NoError(t, kvs.Set(ctx, "portal:settings", `{"site_name":"Majlis Kantho"}`))
	require.NoError(t, kvs.Set(ctx, "portal:lang", "bn"))
	require.NoError(t, kvs.Set(ctx, "portal:session:abc", `{"id":"abc"}`))
	require.NoError(t, kvs.Set(ctx, "portal:ai:summary:xyz", "cached"))
	require.NoError(t, kvs.Set(ctx, "portal:poll:voted:p1:1.2.3.4", "1"))

	svc := NewService(kvs, config.S3Options{}, zap.NewNop())
	archive, err := svc.Export(ctx)
	require.NoError(t, err)

	assert.Contains(t, archive.Stores, "portal:news")
	assert.Contains(t, archive.Stores, "portal:settings")
	assert.Contains(t, archive.Stores, "portal:lang")
	assert.NotContains(t, archive.Stores, "portal:session:abc")
	assert.NotContains(t, archive.Stores, "portal:ai:summary:xyz")
	assert.NotContains(t, archive.Stores, "portal:poll:voted:p1:1.2.3.4")

	// Bare scalars are quoted into valid JSON.
	assert.Equal(t, `"bn"`, string(archive.Stores["portal:lang"]))
}

func TestUploadWithoutBucket(t *testing.T) {
	svc := NewService(kv.NewMemory(), config.S3Options{}, zap.NewNop())
	assert.False(t, svc.OffsiteEnabled())

	_, err := svc.Upload(context.Background())
	assert.ErrorIs(t, err, ErrOffsiteDisabled)
}
