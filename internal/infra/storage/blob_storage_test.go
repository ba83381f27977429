package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"autobid/config"
	domainerrors "autobid/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStorage_UploadReturnsPublicURL(t *testing.T) {
	storage := newBlobStorage(map[string]config.BucketConfig{
		"vehicle-logos": {URL: "mem://", PublicBaseURL: "https://cdn.autobid.test/vehicle-logos/"},
	}, nil, discardLogger())
	t.Cleanup(func() { _ = storage.Close() })

	ctx := context.Background()
	publicURL, err := storage.Upload(ctx, "vehicle-logos", "1700000000000-toyota.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.autobid.test/vehicle-logos/1700000000000-toyota.png", publicURL)

	b, err := storage.bucket(ctx, "vehicle-logos")
	require.NoError(t, err)
	data, err := b.ReadAll(ctx, "1700000000000-toyota.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	attrs, err := b.Attributes(ctx, "1700000000000-toyota.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_UnknownBucket(t *testing.T) {
	storage := newBlobStorage(nil, nil, discardLogger())

	_, err := storage.Upload(context.Background(), "missing", "key", []byte("x"), "text/plain")
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)

	_, err = storage.SignedURL(context.Background(), "missing", "key", time.Minute)
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestBlobStorage_SignedURL(t *testing.T) {
	baseURL, err := url.Parse("https://files.autobid.test/signed")
	require.NoError(t, err)

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{
		URLSigner: fileblob.NewURLSignerHMAC(baseURL, []byte("signing-secret")),
	})
	require.NoError(t, err)

	storage := newBlobStorage(nil, map[string]*blob.Bucket{"kyc-documents": bucket}, discardLogger())
	t.Cleanup(func() { _ = storage.Close() })

	signed, err := storage.SignedURL(context.Background(), "kyc-documents", "user-1/front.jpg", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "https://files.autobid.test/signed"), signed)
}
