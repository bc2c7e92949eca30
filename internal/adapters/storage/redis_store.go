package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

// RedisStore persists each record as one JSON string value. Keys are
// namespaced so the tracker can share a Redis database with other tools.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "mindmate"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, key string, out any) error {
	raw, err := s.rdb.Get(ctx, s.namespaced(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ErrDocumentNotFound
		}
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *RedisStore) Save(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.namespaced(key), raw, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.namespaced(key)).Err()
}

func (s *RedisStore) namespaced(key string) string {
	return fmt.Sprintf("%s:doc:%s", s.prefix, key)
}
