package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eventify-app/eventify/pkg/auth"
	"github.com/eventify-app/eventify/pkg/clientip"
	"github.com/eventify-app/eventify/pkg/environment"
	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/httpserver"
	"github.com/eventify-app/eventify/pkg/logger"
	"github.com/eventify-app/eventify/pkg/ratelimiter"
	"github.com/eventify-app/eventify/pkg/redis"
)

// SessionBackend is an opened session store with its readiness checks. The
// rate limiter shares the same backend.
type SessionBackend struct {
	Store     auth.Store
	RateLimit ratelimiter.Store
	Checks    []httpserver.Check
	close     func() error
}

// Close releases the backend connection, if any.
func (b *SessionBackend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenSessionBackend opens the store selected by cfg.SessionStore.
func OpenSessionBackend(ctx context.Context, cfg Config) (*SessionBackend, error) {
	switch cfg.SessionStore {
	case "", StoreMemory:
		limits := ratelimiter.NewMemoryStore()
		return &SessionBackend{
			Store:     auth.NewMemoryStore(),
			RateLimit: limits,
			close:     limits.Close,
		}, nil
	case StoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, errors.Join(ErrSessionStore, err)
		}
		storage := redis.NewStorageWithConfig(client, cfg.Redis)
		return &SessionBackend{
			Store:     auth.NewRedisStore(storage),
			RateLimit: ratelimiter.NewRedisStore(client, cfg.Redis.KeyPrefix+"ratelimit:"),
			Checks:    []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}},
			close:     storage.Close,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSessionStore, cfg.SessionStore)
}

// LoadForms returns the built-in forms merged with cfg.FormsFile, if set.
func LoadForms(cfg Config) (*forms.Registry, error) {
	registry := forms.Default()
	if cfg.FormsFile == "" {
		return registry, nil
	}
	if err := registry.LoadFile(cfg.FormsFile); err != nil {
		return nil, errors.Join(ErrLoadForms, err)
	}
	return registry, nil
}

// NewClient creates the GraphQL client described by cfg.
func NewClient(cfg Config, log *slog.Logger) (*eventapi.Client, error) {
	return eventapi.New(cfg.APIURL,
		eventapi.WithTimeout(cfg.APITimeout),
		eventapi.WithRetries(cfg.APIRetries, eventapi.DefaultBackoff()),
		eventapi.WithUserAgent(cfg.ServiceName),
		eventapi.WithLogger(log),
	)
}

// NewAuthRateLimit creates the bucket guarding credential endpoints, or nil
// when cfg.AuthRateInterval is zero.
func NewAuthRateLimit(cfg Config, store ratelimiter.Store) (*ratelimiter.Bucket, error) {
	if cfg.AuthRateInterval <= 0 || store == nil {
		return nil, nil
	}
	return ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       cfg.AuthRateBurst,
		RefillRate:     1,
		RefillInterval: cfg.AuthRateInterval,
	})
}

// NewClientIP creates the client address resolver. Proxy headers are only
// read when cfg.TrustProxyHeaders is set.
func NewClientIP(cfg Config) *clientip.Resolver {
	if cfg.TrustProxyHeaders {
		return clientip.New(clientip.WithTrustedHeaders())
	}
	return clientip.New()
}

// Serve runs the BFF until ctx is cancelled or the process is signalled.
func Serve(ctx context.Context, cfg Config, log *slog.Logger) error {
	registry, err := LoadForms(cfg)
	if err != nil {
		return err
	}
	client, err := NewClient(cfg, log)
	if err != nil {
		return err
	}
	backend, err := OpenSessionBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close session store", logger.Error(err))
		}
	}()

	limit, err := NewAuthRateLimit(cfg, backend.RateLimit)
	if err != nil {
		return err
	}

	api := New(client, backend.Store,
		WithClientIP(NewClientIP(cfg)),
		WithAuthRateLimit(limit),
		WithForms(registry),
		WithEnvironment(environment.Parse(cfg.AppEnv)),
		WithLogger(log),
		WithReadinessChecks(backend.Checks...),
		WithSessionTTL(cfg.SessionTTL),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string, log *slog.Logger) {
			log.Info("Eventify API proxy listening",
				slog.String("addr", addr),
				slog.String("upstream", client.Endpoint()),
				slog.String("session_store", cfg.SessionStore),
			)
		}),
	)
	return srv.Run(ctx, api.Router())
}
