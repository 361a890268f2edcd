// Package redis connects to Redis with retries and exposes a small prefixed
// key-value Storage used to persist browser sessions of the BFF server.
//
// Configuration is read from the environment via Config:
//
//	cfg, err := config.Load[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	defer client.Close()
//
//	store := redis.NewStorageWithConfig(client, cfg)
//	_ = store.Set(ctx, "sid:eventify_token", []byte(token))
//
// Healthcheck returns a check suitable for the readiness endpoint.
package redis
