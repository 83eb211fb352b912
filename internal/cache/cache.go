// Package cache abstracts the query cache used by the public job listing.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("key not found in cache")
	ErrInvalidValue = errors.New("invalid value for cache")
)

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Get(ctx context.Context, key string, value interface{}) error

	Delete(ctx context.Context, key string) error

	Close() error
}
