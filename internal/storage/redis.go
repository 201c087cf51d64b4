package storage

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisMedium stores each key as a plain string under Prefix.
type RedisMedium struct {
	Client *redis.Client
	Prefix string
}

func NewRedisMedium(client *redis.Client, prefix string) *RedisMedium {
	return &RedisMedium{Client: client, Prefix: prefix}
}

func (m *RedisMedium) Driver() string { return "redis" }

func (m *RedisMedium) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := m.Client.Get(ctx, m.Prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (m *RedisMedium) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return m.Client.Set(ctx, m.Prefix+key, value, 0).Err()
}

func (m *RedisMedium) RemoveItem(ctx context.Context, key string) error {
	return m.Client.Del(ctx, m.Prefix+key).Err()
}
