package eventapi

import (
	"context"

	"github.com/eventify-app/eventify/pkg/auth"
)

// Authenticator exposes the login and logout mutations as an auth.Authenticator.
type Authenticator struct {
	client *Client
}

// NewAuthenticator wraps c.
func NewAuthenticator(c *Client) *Authenticator {
	return &Authenticator{client: c}
}

func (a *Authenticator) Login(ctx context.Context, email, password string) (auth.Credentials, error) {
	res, err := a.client.Login(ctx, LoginInput{Email: email, Password: password})
	if err != nil {
		return auth.Credentials{}, err
	}

	creds := auth.Credentials{Success: res.Success, Message: res.Message, Token: res.Token}
	if res.User != nil {
		creds.User = &auth.User{
			ID:        res.User.ID,
			Email:     res.User.Email,
			FirstName: res.User.FirstName,
			LastName:  res.User.LastName,
		}
	}
	return creds, nil
}

func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if token != "" {
		ctx = WithToken(ctx, token)
	}
	_, err := a.client.Logout(ctx)
	return err
}
