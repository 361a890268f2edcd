package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eventify-app/eventify/pkg/auth"
	"github.com/eventify-app/eventify/pkg/binder"
	"github.com/eventify-app/eventify/pkg/clientip"
	"github.com/eventify-app/eventify/pkg/environment"
	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/forms"
	"github.com/eventify-app/eventify/pkg/handler"
	"github.com/eventify-app/eventify/pkg/httpserver"
	"github.com/eventify-app/eventify/pkg/ratelimiter"
	"github.com/eventify-app/eventify/pkg/requestid"
	"github.com/eventify-app/eventify/pkg/validator"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour
	readinessTimeout  = 2 * time.Second
)

// API serves the JSON endpoints used by the Eventify web client and proxies
// authenticated calls to the GraphQL API.
type API struct {
	client     *eventapi.Client
	authn      auth.Authenticator
	store      auth.Store
	forms      *forms.Registry
	env        environment.Environment
	log        *slog.Logger
	checks     []httpserver.Check
	sessionTTL time.Duration
	clientIP   *clientip.Resolver
	authLimit  *ratelimiter.Bucket
}

// Option configures an API.
type Option func(*API)

// WithForms replaces the built-in form registry.
func WithForms(r *forms.Registry) Option {
	return func(a *API) {
		if r != nil {
			a.forms = r
		}
	}
}

func WithEnvironment(env environment.Environment) Option {
	return func(a *API) { a.env = env }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithReadinessChecks adds checks to /health/ready.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(a *API) { a.checks = append(a.checks, checks...) }
}

// WithSessionTTL sets the max age of the session cookie.
func WithSessionTTL(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.sessionTTL = d
		}
	}
}

// WithClientIP sets the resolver of client addresses used for logging and
// rate limiting.
func WithClientIP(r *clientip.Resolver) Option {
	return func(a *API) {
		if r != nil {
			a.clientIP = r
		}
	}
}

// WithAuthRateLimit limits credential endpoints (register, verify, login,
// password reset) per client address and path.
func WithAuthRateLimit(b *ratelimiter.Bucket) Option {
	return func(a *API) { a.authLimit = b }
}

// New creates an API. It panics when client or store is nil.
func New(client *eventapi.Client, store auth.Store, opts ...Option) *API {
	if client == nil {
		panic("api: eventapi client is required")
	}
	if store == nil {
		panic("api: session store is required")
	}

	a := &API{
		client:     client,
		authn:      eventapi.NewAuthenticator(client),
		store:      store,
		forms:      forms.Default(),
		env:        environment.Development,
		log:        slog.New(slog.DiscardHandler),
		sessionTTL: defaultSessionTTL,
		clientIP:   clientip.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router returns the HTTP handler with every route mounted.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		a.clientIP.Middleware,
		environment.Middleware(a.env),
		requestLogger(a.log),
		middleware.Recoverer,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(a.log, readinessTimeout, a.checks...))

	r.Route("/api", func(r chi.Router) {
		r.Get("/forms", handler.Wrap(a.listForms))
		r.Post("/forms/{form}/validate", handler.Wrap(a.validateForm,
			handler.WithBinder[handler.Context, validator.Values](bindValues),
		))

		r.Post("/password/strength", handler.Wrap(a.passwordStrength,
			handler.WithBinder[handler.Context, PasswordRequest](binder.JSON),
		))
		r.HandleFunc("/password/strength/stream", handler.Wrap(a.passwordStrengthStream))

		r.Route("/auth", func(r chi.Router) {
			r.Use(a.session)
			limit := a.rateLimit()
			r.With(limit).Post("/register", handler.Wrap(a.register,
				handler.WithBinder[handler.Context, RegisterRequest](binder.JSON),
			))
			r.With(limit).Post("/verify-email", handler.Wrap(a.verifyEmail,
				handler.WithBinder[handler.Context, VerifyEmailRequest](binder.JSON),
			))
			r.With(limit).Post("/login", handler.Wrap(a.login,
				handler.WithBinder[handler.Context, LoginRequest](binder.JSON),
			))
			r.Post("/logout", handler.Wrap(a.logout))
			r.With(limit).Post("/forgot-password", handler.Wrap(a.forgotPassword,
				handler.WithBinder[handler.Context, ForgotPasswordRequest](binder.JSON),
			))
			r.With(limit).Post("/reset-password", handler.Wrap(a.resetPassword,
				handler.WithBinder[handler.Context, ResetPasswordRequest](binder.JSON),
			))

			r.Group(func(r chi.Router) {
				r.Use(a.requireAuth)
				r.Get("/me", handler.Wrap(a.me))
				r.Post("/change-password", handler.Wrap(a.changePassword,
					handler.WithBinder[handler.Context, ChangePasswordRequest](binder.JSON),
				))
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Use(a.session, a.requireAuth)
			r.Get("/", handler.Wrap(a.listEvents))
			r.Post("/", handler.Wrap(a.createEvent,
				handler.WithBinder[handler.Context, EventRequest](binder.JSON),
			))
			r.Get("/{id}", handler.Wrap(a.getEvent))
			r.Put("/{id}", handler.Wrap(a.updateEvent,
				handler.WithBinder[handler.Context, EventRequest](binder.JSON),
			))
			r.Delete("/{id}", handler.Wrap(a.deleteEvent))
			r.Post("/{id}/invite", handler.Wrap(a.inviteParticipants,
				handler.WithBinder[handler.Context, InviteRequest](binder.JSON),
			))
		})
	})

	return r
}
