package auth

import "errors"

var (
	ErrNotAuthenticated = errors.New("auth.not_authenticated")
	ErrStoreFailed      = errors.New("auth.store_failed")
)
