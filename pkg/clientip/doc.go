// Package clientip resolves the address of the client behind an HTTP request.
//
// By default only the TCP peer address is used. Behind a reverse proxy,
// WithTrustedHeaders enables CF-Connecting-IP, X-Forwarded-For and X-Real-IP,
// checked in that order:
//
//	resolver := clientip.New(clientip.WithTrustedHeaders())
//	r.Use(resolver.Middleware)
//
//	ip := clientip.FromContext(r.Context())
//
// Addresses are normalized (IPv4-mapped IPv6 is unmapped, zones are dropped).
// Invalid values are skipped; when nothing valid is found the result is "".
package clientip
