package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2323, cfg.Port)
	assert.Equal(t, "badger", cfg.Store.Driver)
	assert.Equal(t, "./data", cfg.Store.Path)
	assert.False(t, cfg.IsDev())
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: development
jwt_secret: testing-secret
allowed_origins:
  - "majliskantho.com"
  - "*.majliskantho.com"
store:
  driver: memory
ai:
  type: anthropic
  api_key: key
s3:
  bucket: backups
  region: ap-southeast-1
  access_key_id: AK
  secret_access_key: SK
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "testing-secret", cfg.JWTSecret)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Len(t, cfg.AllowedOrigins, 2)
	assert.Equal(t, "anthropic", cfg.AI.Type)
	assert.True(t, cfg.S3.Configured())
}

func TestNormalizeRejectsBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: -1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2323, cfg.Port)
}

func TestS3NotConfiguredWhenIncomplete(t *testing.T) {
	opts := S3Options{Bucket: "only-bucket"}
	assert.False(t, opts.Configured())
}
