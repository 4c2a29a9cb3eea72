package backup

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/majlis-kantho/core/internal/config"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"go.uber.org/zap"
)

const archiveVersion = 1

// transient key prefixes that have no business in a backup.
var excludedPrefixes = []string{
	"portal:session:",
	"portal:ai:",
	"portal:poll:voted:",
}

// Archive bundles every persistent snapshot into one portable document.
type Archive struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"created"`
	Stores    map[string]json.RawMessage `json:"stores"`
}

// Service exports the portal state and optionally ships it off-site.
type Service struct {
	kvs      kv.Store
	uploader *s3Uploader
	logger   *zap.Logger
}

func NewService(kvs kv.Store, s3opts config.S3Options, logger *zap.Logger) *Service {
	s := &Service{kvs: kvs, logger: logger.Named("backup")}
	if s3opts.Configured() {
		s.uploader = newS3Uploader(s3opts)
	}
	return s
}

// OffsiteEnabled reports whether uploads are configured.
func (s *Service) OffsiteEnabled() bool {
	return s.uploader != nil
}

// Export collects every durable snapshot into one archive. Session, vote
// and cache keys stay out.
func (s *Service) Export(ctx context.Context) (*Archive, error) {
	keys, err := s.kvs.Keys(ctx, "portal:")
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	archive := &Archive{
		Version:   archiveVersion,
		CreatedAt: time.Now().UTC(),
		Stores:    make(map[string]json.RawMessage, len(keys)),
	}
	for _, key := range keys {
		if excluded(key) {
			continue
		}
		raw, ok, err := s.kvs.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if json.Valid([]byte(raw)) {
			archive.Stores[key] = json.RawMessage(raw)
			continue
		}
		// Scalar values like the locale code are stored as bare strings.
		quoted, _ := json.Marshal(raw)
		archive.Stores[key] = quoted
	}
	return archive, nil
}

// Upload exports the archive and pushes it to the configured bucket.
// Returns the object key written.
func (s *Service) Upload(ctx context.Context) (string, error) {
	if s.uploader == nil {
		return "", ErrOffsiteDisabled
	}
	archive, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(archive)
	if err != nil {
		return "", err
	}
	objectKey := "backups/portal-" + archive.CreatedAt.Format("20060102-150405") + ".json"
	if err := s.uploader.Put(ctx, objectKey, payload); err != nil {
		return "", err
	}
	s.logger.Info("backup uploaded", zap.String("key", objectKey), zap.Int("bytes", len(payload)))
	return objectKey, nil
}

func excluded(key string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
