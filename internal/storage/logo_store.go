package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// LogoStore uploads company logos and returns their public URL.
type LogoStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// S3LogoStore stores logos in an S3-compatible bucket. Uploads are a
// single blocking call with no retry: a transient failure surfaces
// immediately to the caller.
type S3LogoStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewS3LogoStore connects to an S3-compatible endpoint. Returns nil when
// the endpoint is unset so the caller can treat storage as unconfigured.
func NewS3LogoStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*S3LogoStore, error) {
	if endpoint == "" {
		return nil, nil
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}
	return &S3LogoStore{
		client:   client,
		bucket:   bucket,
		endpoint: endpoint,
		useSSL:   useSSL,
	}, nil
}

// Upload puts the object and returns the public URL it is served from.
func (s *S3LogoStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName), nil
}
