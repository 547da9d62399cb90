package service

import (
	"context"
	"time"
)

// Cache is the read-through cache surface the services depend on. The
// redis-backed cache.Client satisfies it and fails safe when redis is
// absent.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}
