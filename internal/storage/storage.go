package storage

import (
	"context"
	"time"
)

// ObjectStorage defines the object operations the upload flow needs from a backend.
type ObjectStorage interface {
	// PresignPut returns a URL the browser can PUT the object to directly.
	PresignPut(ctx context.Context, key, contentType string, size int64, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
	// PublicURL is where the object is readable once uploaded.
	PublicURL(key string) string
	Bucket() string
}

// Options selects and configures a backend.
type Options struct {
	Provider      string // s3 | minio
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	PublicBaseURL string
}

// New builds the backend named by opts.Provider.
func New(ctx context.Context, opts Options) (ObjectStorage, error) {
	switch opts.Provider {
	case "minio":
		return NewMinioClient(opts)
	default:
		return NewS3Client(ctx, opts)
	}
}
