package auth

import (
	"context"
	"time"
)

const (
	// TokenKey and UserKey are the store keys holding the session.
	TokenKey = "eventify_token"
	UserKey  = "eventify_user"
)

// DefaultLoginFailure is reported when login fails without a usable message.
const DefaultLoginFailure = "Login failed. Please try again."

// User is the signed-in account as returned by the API.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session is an authenticated token together with its user. ExpiresAt is
// set when the token is a JWT carrying an exp claim.
type Session struct {
	Token     string     `json:"token"`
	User      User       `json:"user"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func newSession(token string, user User) *Session {
	s := &Session{Token: token, User: user}
	if exp, ok := TokenExpiry(token); ok {
		s.ExpiresAt = &exp
	}
	return s
}

// LoginResult is the outcome of Manager.Login.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Credentials is the remote answer to a login attempt.
type Credentials struct {
	Success bool
	Message string
	Token   string
	User    *User
}

// Authenticator talks to the remote identity service.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (Credentials, error)
	Logout(ctx context.Context, token string) error
}

// PublicError is implemented by errors whose message is safe to show to a user.
type PublicError interface {
	error
	PublicMessage() string
}
