package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state. Implementations must be safe for concurrent use.
type Store interface {
	// ConsumeTokens refills the bucket for now and takes tokens if enough
	// are available. Denied requests leave the bucket unchanged and report
	// remaining as the (negative) shortfall.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config, now time.Time) (remaining int, resetAt time.Time, err error)

	Reset(ctx context.Context, key string) error
}
