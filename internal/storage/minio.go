package storage

import (
	"context"
	"io"
	"nextlevel_lms/internal/config"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioMedium keeps one object per key in an S3 compatible bucket.
type MinioMedium struct {
	Client *minio.Client
	Bucket string
	Prefix string
}

func NewMinioMedium(ctx context.Context, cfg *config.StorageConfig) (*MinioMedium, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioMedium{Client: client, Bucket: cfg.MinioBucket, Prefix: cfg.ObjectPrefix}, nil
}

func (m *MinioMedium) Driver() string { return "minio" }

func (m *MinioMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	obj, err := m.Client.GetObject(ctx, m.Bucket, m.Prefix+key, minio.GetObjectOptions{})
	if err != nil {
		return "", false, minioNotFound(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", false, minioNotFound(err)
	}
	return string(data), true, nil
}

func (m *MinioMedium) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := m.Client.PutObject(ctx, m.Bucket, m.Prefix+key, strings.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

func (m *MinioMedium) RemoveItem(ctx context.Context, key string) error {
	return m.Client.RemoveObject(ctx, m.Bucket, m.Prefix+key, minio.RemoveObjectOptions{})
}

// minioNotFound turns NoSuchKey into nil so callers can report a missing item.
func minioNotFound(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil
	}
	return err
}
