package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/eventify-app/eventify/pkg/auth"
	"github.com/eventify-app/eventify/pkg/environment"
	"github.com/eventify-app/eventify/pkg/eventapi"
	"github.com/eventify-app/eventify/pkg/handler"
	"github.com/eventify-app/eventify/pkg/logger"
	"github.com/eventify-app/eventify/pkg/ratelimiter"
)

// SessionCookie holds the opaque browser session ID.
const SessionCookie = "eventify_sid"

type (
	sessionKey   struct{}
	sessionIDKey struct{}
)

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "HTTP request",
				logger.HTTPRequest(r.Method, r.URL.Path, status),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// session identifies the browser by its session cookie, issuing a new one
// when missing, and restores the stored authentication state into the
// request context.
func (a *API) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := sessionIDFromCookie(r)
		if sid == "" {
			sid = uuid.NewString()
			a.setSessionCookie(w, r, sid)
		}

		mgr := auth.NewManager(a.store, a.authn,
			auth.WithNamespace(sid),
			auth.WithLogger(a.log),
		)
		if err := mgr.Restore(r.Context()); err != nil {
			a.log.ErrorContext(r.Context(), "Failed to restore session",
				logger.Component("api"),
				logger.SessionID(sid),
				logger.Error(err),
			)
			_ = handler.JSONError(handler.ErrServiceUnavailable).Render(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, mgr)
		ctx = context.WithValue(ctx, sessionIDKey{}, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth answers 401 unless the session holds a live token, which is
// then attached to the context for GraphQL calls.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mgr := sessionFrom(r.Context())
		if mgr == nil {
			_ = handler.JSONError(handler.ErrUnauthorized).Render(w, r)
			return
		}
		token, err := mgr.Token()
		if err != nil {
			_ = handler.JSONError(handler.ErrUnauthorized.WithMessage("Authentication required")).Render(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(eventapi.WithToken(r.Context(), token)))
	})
}

func sessionFrom(ctx context.Context) *auth.Manager {
	return handler.ContextValue[*auth.Manager](ctx, sessionKey{})
}

func sessionIDFrom(ctx context.Context) string {
	return handler.ContextValue[string](ctx, sessionIDKey{})
}

func sessionIDFromCookie(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// setSessionCookie replaces any session cookie already queued on w.
func (a *API) setSessionCookie(w http.ResponseWriter, r *http.Request, sid string) {
	c := &http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(a.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   environment.FromContext(r.Context()).SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	}

	h := w.Header()
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, SessionCookie+"=") {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
	h.Add("Set-Cookie", c.String())
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   environment.FromContext(r.Context()).SecureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

var errTooManyAttempts = handler.ErrTooManyRequests.WithMessage("Too many attempts. Please try again later.")

// rateLimit limits credential endpoints per client IP and path. Without a
// configured bucket it passes requests through.
func (a *API) rateLimit() func(http.Handler) http.Handler {
	if a.authLimit == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return ratelimiter.Middleware(a.authLimit,
		ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByPath),
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
			_ = handler.JSONError(errTooManyAttempts).Render(w, r)
		}),
		ratelimiter.WithStoreErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			a.log.ErrorContext(r.Context(), "Rate limit store failed", logger.Error(err))
			_ = handler.JSONError(handler.ErrServiceUnavailable).Render(w, r)
		}),
	)
}
