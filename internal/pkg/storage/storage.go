package storage

import (
	"context"
	"io"
)

// Storage is the minimal interface proof uploads need:
// store a file, remove it, resolve its public URL.
type Storage interface {
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	GetURL(key string) string
}

// Config holds storage backend configuration
type Config struct {
	// S3 / MinIO
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Local filesystem fallback
	LocalPath string
	LocalURL  string
}

// allowedContentTypes lists what a proof screenshot may be
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// IsAllowedContentType reports whether the upload content type is accepted
func IsAllowedContentType(contentType string) bool {
	return allowedContentTypes[contentType]
}
