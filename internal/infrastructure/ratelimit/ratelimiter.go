package ratelimit

import (
	"context"
	"time"
)

// Limiter counts attempts per key within a window.
type Limiter interface {
	// Allow records one attempt for key and reports whether it is within the
	// limit. On a backend error the caller decides whether to fail open.
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

type Config struct {
	Limit  int
	Window time.Duration
}
