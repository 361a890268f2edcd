// Package ratelimiter implements token bucket rate limiting with in-memory
// and Redis stores and an HTTP middleware.
//
// A bucket holds at most Capacity tokens and earns RefillRate tokens every
// RefillInterval. Each allowed request takes a token; a denied request takes
// nothing and reports a negative Remaining.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 30 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(limiter,
//		ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByPath),
//	)).Post("/api/auth/login", login)
//
// RedisStore runs the same algorithm in a Lua script so several processes
// share one budget.
package ratelimiter
