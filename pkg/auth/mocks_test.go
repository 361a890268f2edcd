package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eventify-app/eventify/pkg/auth"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (auth.Credentials, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(auth.Credentials), args.Error(1)
}

func (m *MockAuthenticator) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type publicErr struct{ msg string }

func (e publicErr) Error() string         { return "graphql: " + e.msg }
func (e publicErr) PublicMessage() string { return e.msg }

type failingStore struct {
	auth.Store
	err error
}

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string) error         { return f.err }
func (f failingStore) Delete(context.Context, ...string) error           { return f.err }
