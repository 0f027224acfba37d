// Package session holds the process-wide projection of the authenticated
// identity. It is constructed explicitly, passed down to consumers and torn
// down with Close; there is no package-level singleton.
package session

import (
	"context"
	"fmt"
	"sync"

	"LostAndFound/internal/authn"
)

// Provider tracks the current identity, a loading flag and the last
// authentication-retrieval error, and notifies subscribers on change.
type Provider struct {
	client authn.Client

	mu       sync.RWMutex
	identity *authn.Identity
	loading  bool
	err      error

	subs    map[int]func(*authn.Identity)
	nextSub int

	unsubscribe func()
}

// NewProvider queries the auth collaborator for an existing session, resolves
// the full user record when one is present, and subscribes to the
// change-notification stream. Whatever happens, loading ends up false; the
// provider never hangs in the loading state.
func NewProvider(ctx context.Context, client authn.Client) *Provider {
	p := &Provider{
		client:  client,
		loading: true,
		subs:    map[int]func(*authn.Identity){},
	}
	p.unsubscribe = client.OnAuthStateChange(p.handleAuthChange)
	p.initialize(ctx)
	return p
}

func (p *Provider) initialize(ctx context.Context) {
	defer func() {
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
	}()

	sess, err := p.client.GetSession()
	if err != nil {
		p.mu.Lock()
		p.identity = nil
		p.err = fmt.Errorf("auth session error: %w", err)
		p.mu.Unlock()
		return
	}
	if sess == nil {
		p.mu.Lock()
		p.identity = nil
		p.err = nil
		p.mu.Unlock()
		return
	}

	id, err := p.client.GetUser(ctx)
	p.mu.Lock()
	if err != nil {
		p.identity = nil
		p.err = fmt.Errorf("user lookup error: %w", err)
	} else {
		p.identity = id
		p.err = nil
	}
	p.mu.Unlock()
}

// handleAuthChange replaces or clears the held identity on every event from
// the auth collaborator and notifies subscribers synchronously.
func (p *Provider) handleAuthChange(sess *authn.Session) {
	p.mu.Lock()
	if sess == nil {
		p.identity = nil
	} else {
		p.identity = &authn.Identity{ID: sess.UserID, Email: sess.Email}
	}
	p.loading = false
	p.err = nil
	current := p.identity
	cbs := make([]func(*authn.Identity), 0, len(p.subs))
	for _, cb := range p.subs {
		cbs = append(cbs, cb)
	}
	p.mu.Unlock()

	for _, cb := range cbs {
		cb(current)
	}
}

// Identity returns the current identity, or nil when anonymous.
func (p *Provider) Identity() *authn.Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.identity == nil {
		return nil
	}
	id := *p.identity
	return &id
}

// Loading reports whether the initial session resolution is still running.
func (p *Provider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Err returns the last authentication-retrieval error, if any.
func (p *Provider) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

// Subscribe registers a callback for identity changes and returns its
// unsubscribe function.
func (p *Provider) Subscribe(cb func(*authn.Identity)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = cb
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// Close detaches the provider from the auth collaborator.
func (p *Provider) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}
