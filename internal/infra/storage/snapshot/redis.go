package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix пространство имен ключей сервиса в Redis
const keyPrefix = "salon:snapshot:"

// RedisStore бэкенд поверх Redis: один снапшот — одно строковое значение
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore создает redis-хранилище снапшотов
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Load читает снапшот по ключу
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("%w: get %s: %v", ErrLoad, key, err)
	}
	return data, nil
}

// Save записывает снапшот по ключу без TTL
func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrSave, key, err)
	}
	return nil
}
