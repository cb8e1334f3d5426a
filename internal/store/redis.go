package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "maintenance:"

// RedisStore хранит каждую коллекцию в отдельном ключе как JSON-массив.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) GetAll(ctx context.Context, collection string) ([]byte, error) {
	doc, err := s.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (s *RedisStore) SetAll(ctx context.Context, collection string, document []byte) error {
	return s.client.Set(ctx, redisKeyPrefix+collection, document, 0).Err()
}
