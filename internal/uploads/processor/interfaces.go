package processor

import (
	"context"
	"io"
	"time"
)

// ObjectStore defines the object storage operations required by UploadProcessor
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
