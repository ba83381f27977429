package service

import (
	"context"
	"time"
)

// ObjectStorage reads and writes files kept in named buckets.
type ObjectStorage interface {
	// SignedURL returns a URL granting read access to key for expiry.
	SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)

	// Upload writes data under key and returns its public URL.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}
