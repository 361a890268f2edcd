package api

import "errors"

var (
	ErrUnknownSessionStore = errors.New("api: unknown session store")
	ErrSessionStore        = errors.New("api: session store unavailable")
	ErrLoadForms           = errors.New("api: failed to load forms")
)
