package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cppla/blog/models"
)

// ListReader is the subset of *redis.Client the redis store needs.
type ListReader interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisStore reads posts from a Redis list whose elements are JSON post
// records, in list order.
type RedisStore struct {
	rc  ListReader
	key string
}

func NewRedisStore(rc ListReader, key string) *RedisStore {
	return &RedisStore{rc: rc, key: key}
}

func (s *RedisStore) Posts(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	items, err := s.rc.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", s.key, err)
	}

	posts := make([]models.Post, 0, len(items))
	for i, item := range items {
		p, err := decodeRecord([]byte(item))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", s.key, i, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}
