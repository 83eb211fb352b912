package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teodor-vladconstantin/job-navigator/internal/cache"
	"github.com/teodor-vladconstantin/job-navigator/internal/config"
)

type Cache struct {
	client *redis.Client
}

func New(cfg *config.RedisConfig) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{client: client}
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, key string, value interface{}) error {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return cache.ErrNotFound
	}
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case *string:
		*v = string(val)
	case *[]byte:
		*v = val
	default:
		return cache.ErrInvalidValue
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
