package authn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// cookieName matches the server's auth cookie.
const cookieName = "auth_token"

// TokenStore persists the session token between process runs.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// HTTPClient implements Client over the registry server's /api/user endpoints
// with a pluggable token store.
type HTTPClient struct {
	baseURL string
	tokens  TokenStore
	http    *http.Client

	mu     sync.Mutex
	subs   map[int]func(*Session)
	nextID int
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, tokens TokenStore) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    http.DefaultClient,
		subs:    map[int]func(*Session){},
	}
}

// tokenClaims mirrors the server's JWT payload.
type tokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// GetSession introspects the stored token locally: the anonymous client
// cannot verify the signature, but it can read user id and expiry the same
// way a hosted auth SDK does.
func (c *HTTPClient) GetSession() (*Session, error) {
	token, err := c.tokens.Load()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	sess, err := sessionFromToken(token)
	if err != nil {
		// unreadable token: drop it and report no session
		_ = c.tokens.Clear()
		return nil, nil
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = c.tokens.Clear()
		return nil, nil
	}
	return sess, nil
}

func (c *HTTPClient) GetUser(ctx context.Context) (*Identity, error) {
	token, err := c.tokens.Load()
	if err != nil || token == "" {
		return nil, ErrSessionInvalid
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/user/me", nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionInvalid
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service error: %s", strings.TrimSpace(string(body)))
	}

	var id struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &id); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &Identity{ID: id.ID, Email: id.Email}, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/user/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service error: %s", strings.TrimSpace(string(body)))
	}

	token := ""
	for _, cookie := range resp.Cookies() {
		if cookie.Name == cookieName && cookie.Value != "" {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil, fmt.Errorf("no auth cookie in response")
	}
	if err := c.tokens.Save(token); err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}

	var id struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &id); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}

	sess, err := sessionFromToken(token)
	if err != nil {
		sess = &Session{Token: token, UserID: id.ID}
	}
	sess.Email = id.Email

	c.notify(sess)
	return &Identity{ID: id.ID, Email: id.Email}, nil
}

func (c *HTTPClient) SignOut() error {
	if err := c.tokens.Clear(); err != nil {
		return err
	}
	c.notify(nil)
	return nil
}

func (c *HTTPClient) OnAuthStateChange(cb func(*Session)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = cb
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *HTTPClient) notify(s *Session) {
	c.mu.Lock()
	cbs := make([]func(*Session), 0, len(c.subs))
	for _, cb := range c.subs {
		cbs = append(cbs, cb)
	}
	c.mu.Unlock()
	for _, cb := range cbs {
		cb(s)
	}
}

// sessionFromToken decodes the JWT payload without verifying the signature.
func sessionFromToken(token string) (*Session, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("token has no user id")
	}
	sess := &Session{Token: token, UserID: claims.UserID}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
