package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"nextlevel_lms/internal/config"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSMedium keeps one object per key in an Aliyun OSS bucket.
type OSSMedium struct {
	Bucket *oss.Bucket
	Prefix string
}

func NewOSSMedium(cfg *config.StorageConfig) (*OSSMedium, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSMedium{Bucket: bucket, Prefix: cfg.ObjectPrefix}, nil
}

func (m *OSSMedium) Driver() string { return "oss" }

func (m *OSSMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	body, err := m.Bucket.GetObject(m.Prefix+key, oss.WithContext(ctx))
	if err != nil {
		var svcErr oss.ServiceError
		if errors.As(err, &svcErr) && svcErr.StatusCode == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (m *OSSMedium) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return m.Bucket.PutObject(m.Prefix+key, strings.NewReader(value), oss.WithContext(ctx), oss.ContentType("application/json"))
}

func (m *OSSMedium) RemoveItem(ctx context.Context, key string) error {
	return m.Bucket.DeleteObject(m.Prefix+key, oss.WithContext(ctx))
}
