// Package authn is the client-side contract of the authentication
// collaborator. The application only observes identity transitions; it never
// constructs or destroys sessions itself.
package authn

import (
	"context"
	"errors"
	"time"
)

// Identity is the read-only projection of the authenticated admin principal.
type Identity struct {
	ID    int64
	Email string
}

// Session describes a currently valid auth session.
type Session struct {
	Token     string
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

var (
	// ErrInvalidCredentials: sign-in rejected by the auth service.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionInvalid: the stored session was rejected by the auth service.
	ErrSessionInvalid = errors.New("invalid or expired session")
)

// Client is the auth-service contract consumed by the session provider and
// the login flow.
type Client interface {
	// GetSession returns the existing session, or (nil, nil) when there is
	// none. Expired tokens count as no session, not as an error.
	GetSession() (*Session, error)

	// GetUser resolves the full user record behind the current session.
	GetUser(ctx context.Context) (*Identity, error)

	// SignIn authenticates, persists the session and notifies subscribers.
	SignIn(ctx context.Context, email, password string) (*Identity, error)

	// SignOut drops the session and notifies subscribers with nil.
	SignOut() error

	// OnAuthStateChange registers a callback invoked on every session
	// transition. The returned function unsubscribes it.
	OnAuthStateChange(cb func(*Session)) (unsubscribe func())
}
