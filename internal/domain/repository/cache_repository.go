package repository

import (
	"context"
	"time"
)

// CacheRepository - key/value кеш с TTL для ответов disease.sh
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах кеша - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// DeleteByPrefix удаляет все ключи с префиксом и возвращает их число
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}
