package usecase

import (
	"context"
	"time"
)

// Cache is the best-effort cache the usecases depend on. The redis
// implementation degrades to a no-op when the server is unreachable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
