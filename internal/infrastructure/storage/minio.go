package storage

import (
	"bytes"
	"context"
	"fmt"

	"superhero-backend/internal/config"
	"superhero-backend/internal/domains/superhero"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage keeps image blobs in a MinIO bucket. Object keys are
// prefix + public id; the public id handed to callers stays flat so it
// can travel through a URL path segment.
type MinIOStorage struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL, // false for local, true for production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Create the bucket on first run.
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

func (s *MinIOStorage) Store(ctx context.Context, data []byte, originalFilename, contentType string) (superhero.Image, error) {
	publicID := newPublicID(originalFilename)
	key := s.prefix + publicID

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return superhero.Image{}, fmt.Errorf("failed to upload %s to minio: %w", key, err)
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)

	return superhero.Image{
		URL:      url,
		PublicID: publicID,
	}, nil
}

// Delete removes the blob. Removing a key that does not exist succeeds,
// so the operation is idempotent.
func (s *MinIOStorage) Delete(ctx context.Context, publicID string) error {
	key := s.prefix + publicID
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s from minio: %w", key, err)
	}
	return nil
}
