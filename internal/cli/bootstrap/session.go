// Package bootstrap wires the CLI's collaborators together for a single
// command run.
package bootstrap

import (
	"context"

	"LostAndFound/internal/authn"
	"LostAndFound/internal/cli/api"
	"LostAndFound/internal/cli/auth"
	"LostAndFound/internal/config"
	"LostAndFound/internal/session"
)

// Session bundles everything a command needs: the resolved session provider,
// the auth collaborator and an API client carrying the current token.
type Session struct {
	Provider *session.Provider
	Auth     authn.Client
	API      *api.Client
}

// Admin reports whether an admin identity is currently signed in.
func (s *Session) Admin() bool {
	return s.Provider.Identity() != nil
}

// OpenSession builds the token store, auth client, session provider and API
// client from config. The returned cleanup must be called when the command
// finishes.
func OpenSession(ctx context.Context, cfg *config.Config) (*Session, func(), error) {
	tokens := auth.FileTokenStore{Path: cfg.TokenFile}
	authClient := authn.NewHTTPClient(cfg.ServerURL, tokens)
	provider := session.NewProvider(ctx, authClient)

	token, err := tokens.Load()
	if err != nil {
		token = ""
	}

	s := &Session{
		Provider: provider,
		Auth:     authClient,
		API:      api.New(cfg.ServerURL, token),
	}
	return s, provider.Close, nil
}
