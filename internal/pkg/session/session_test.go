package session

import (
	"context"
	"testing"
	"time"

	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueGetRevoke(t *testing.T) {
	kvs := kv.NewMemory()
	ctx := context.Background()

	sess, err := Issue(ctx, kvs, "u1", "127.0.0.1", "test-agent", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	got, err := Get(ctx, kvs, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "127.0.0.1", got.IP)

	require.NoError(t, Revoke(ctx, kvs, sess.ID))
	got, err = Get(ctx, kvs, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetUnknownSession(t *testing.T) {
	kvs := kv.NewMemory()
	got, err := Get(context.Background(), kvs, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExpiredSessionIsGone(t *testing.T) {
	kvs := kv.NewMemory()
	ctx := context.Background()

	sess, err := Issue(ctx, kvs, "u1", "127.0.0.1", "test-agent", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	got, err := Get(ctx, kvs, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
