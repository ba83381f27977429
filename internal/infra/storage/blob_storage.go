// Package storage implements object storage on top of gocloud.dev/blob.
package storage

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"autobid/config"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through storage.buckets.<name>.url.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage opens every configured bucket lazily and keeps it open until shutdown.
type blobStorage struct {
	mu      sync.Mutex
	configs map[string]config.BucketConfig
	buckets map[string]*blob.Bucket
	logger  *slog.Logger
}

// Params holds dependencies for the object storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the object storage gateway and closes its buckets on shutdown.
func New(params Params) service.ObjectStorage {
	var configs map[string]config.BucketConfig
	if params.Config.Storage != nil {
		configs = params.Config.Storage.Buckets
	}

	storage := newBlobStorage(configs, nil, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage
}

func newBlobStorage(configs map[string]config.BucketConfig, opened map[string]*blob.Bucket, logger *slog.Logger) *blobStorage {
	if configs == nil {
		configs = map[string]config.BucketConfig{}
	}
	if opened == nil {
		opened = map[string]*blob.Bucket{}
	}

	return &blobStorage{
		configs: configs,
		buckets: opened,
		logger:  logger,
	}
}

// SignedURL returns a time-limited read URL for key.
func (s *blobStorage) SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return "", err
	}

	signed, err := b.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: expiry})
	if err != nil {
		return "", domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return signed, nil
}

// Upload writes data under key and returns the object's public URL.
func (s *blobStorage) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return "", err
	}

	if err := b.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	s.logger.Info("Object uploaded",
		slog.String("bucket", bucket),
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return s.publicURL(bucket, key), nil
}

// Close releases every opened bucket.
func (s *blobStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, b := range s.buckets {
		if err := b.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "failed to close bucket %s", name)
		}
		delete(s.buckets, name)
	}

	return firstErr
}

func (s *blobStorage) bucket(ctx context.Context, name string) (*blob.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.buckets[name]; ok {
		return b, nil
	}

	cfg, ok := s.configs[name]
	if !ok || cfg.URL == "" {
		return nil, domainerrors.ErrStorageFailed.WrapMessage("bucket " + name + " is not configured")
	}

	b, err := blob.OpenBucket(ctx, cfg.URL)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}
	s.buckets[name] = b

	return b, nil
}

func (s *blobStorage) publicURL(bucket, key string) string {
	base := strings.TrimRight(s.configs[bucket].PublicBaseURL, "/")
	if base == "" {
		return bucket + "/" + key
	}

	return base + "/" + key
}
