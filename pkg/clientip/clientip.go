package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted, in order, when proxy headers are trusted.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver determines the address of the client that issued a request.
type Resolver struct {
	trustHeaders bool
	headers      []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTrustedHeaders makes the resolver read the given proxy headers before
// falling back to the TCP peer. Only enable it behind a proxy that
// overwrites these headers. Without arguments DefaultHeaders are used.
func WithTrustedHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.trustHeaders = true
		if len(headers) > 0 {
			r.headers = headers
		}
	}
}

// New creates a Resolver that uses the TCP peer address unless
// WithTrustedHeaders is given.
func New(opts ...Option) *Resolver {
	r := &Resolver{headers: DefaultHeaders}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromRequest returns the normalized client address, or "" when none of the
// sources holds a valid IP. X-Forwarded-For contributes its first valid entry.
func (res *Resolver) FromRequest(r *http.Request) string {
	if res.trustHeaders {
		for _, h := range res.headers {
			for candidate := range strings.SplitSeq(r.Header.Get(h), ",") {
				if ip := normalize(candidate); ip != "" {
					return ip
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
