package auth

import (
	"context"
	"testing"

	"github.com/majlis-kantho/core/internal/modules/user"
	"github.com/majlis-kantho/core/internal/pkg/jwt"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	kvs := kv.NewMemory()
	users, err := user.NewService(kvs, zap.NewNop())
	require.NoError(t, err)
	return NewService(users, kvs, zap.NewNop()), kvs
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc, kvs := newTestService(t)
	ctx := context.Background()

	token, pub, err := svc.Login(ctx, "admin", "password", "127.0.0.1", "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Super Admin", pub.Name)

	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, pub.ID, claims.UserID)

	sess, err := session.Get(ctx, kvs, claims.SessionID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, pub.ID, sess.UserID)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin", "wrong", "127.0.0.1", "ua")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown account fails identically.
	_, _, err = svc.Login(ctx, "ghost", "password", "127.0.0.1", "ua")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, kvs := newTestService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "admin", "password", "127.0.0.1", "ua")
	require.NoError(t, err)
	claims, err := jwt.Parse(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))
	sess, err := session.Get(ctx, kvs, claims.SessionID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, pub, err := svc.Login(ctx, "admin", "password", "127.0.0.1", "ua")
	require.NoError(t, err)

	// Wrong current secret.
	err = svc.ChangePassword(pub.ID, "wrong", "new-secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// New secret below policy.
	err = svc.ChangePassword(pub.ID, "password", "short")
	assert.ErrorIs(t, err, ErrPasswordPolicy)

	// Success: the old secret stops working.
	require.NoError(t, svc.ChangePassword(pub.ID, "password", "new-secret"))
	_, _, err = svc.Login(ctx, "admin", "password", "127.0.0.1", "ua")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "admin", "new-secret", "127.0.0.1", "ua")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, pub, err := svc.Login(ctx, "admin", "password", "127.0.0.1", "ua")
	require.NoError(t, err)

	bio := "Covering national affairs since 2009."
	updated, err := svc.UpdateProfile(pub.ID, &ProfileDTO{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, pub.Name, updated.Name)
}
