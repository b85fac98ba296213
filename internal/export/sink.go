package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Sink receives a copy of every produced artifact.
type Sink interface {
	Put(ctx context.Context, key string, a *Artifact) error
}

// DirSink writes artifacts under a local directory, one subdirectory per key.
type DirSink struct {
	Root string
}

// Put writes a to Root/key/filename.
func (s DirSink) Put(ctx context.Context, key string, a *Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Join(s.Root, filepath.Base(key))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create downloads directory: %w", err)
	}
	target := filepath.Join(dir, filepath.Base(a.Filename))
	if err := os.WriteFile(target, a.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// MinioConfig holds the connection settings of a MinIO or S3 bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioSink uploads artifacts to an object storage bucket.
type MinioSink struct {
	client *minio.Client
	bucket string
}

// NewMinioSink connects to the bucket, creating it if needed.
func NewMinioSink(ctx context.Context, cfg MinioConfig) (*MinioSink, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioSink{client: client, bucket: cfg.Bucket}, nil
}

// Put uploads a as key/filename.
func (s *MinioSink) Put(ctx context.Context, key string, a *Artifact) error {
	objectKey := path.Join(key, a.Filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(a.Data), int64(len(a.Data)), minio.PutObjectOptions{
		ContentType: a.ContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}
	return nil
}
