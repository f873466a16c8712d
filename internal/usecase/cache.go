package usecase

import (
	"context"
	"time"
)

// RecommendationCache is satisfied by infrastructure/cache.Redis. A nil cache
// is legal; callers treat every miss as a recompute.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
