package auth

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace prefixes store keys with ns and a colon, so one store can
// hold many sessions.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		m.namespace = ns
	}
}

// WithLogger sets the logger used for remote logout failures and corrupt
// stored sessions. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides time.Now for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
