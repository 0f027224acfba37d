package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"LostAndFound/internal/cli/auth"
	"LostAndFound/internal/config"
	"LostAndFound/internal/middleware"
)

// captureOut redirects command output into a buffer for the duration of a test.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := Out
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

// mustToken signs a session token the way the server does.
func mustToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.BuildToken(1, "test-secret")
	require.NoError(t, err)
	return token
}

// signInAs writes the given token into the config's token file.
func signInAs(t *testing.T, cfg *config.Config, token string) {
	t.Helper()
	require.NoError(t, auth.FileTokenStore{Path: cfg.TokenFile}.Save(token))
}

// fakeRegistry is a minimal in-memory stand-in for the registry server.
type fakeRegistry struct {
	token string
	items []map[string]any

	created       []formFields
	statusUpdates map[string]string
	deleted       []string
}

type formFields map[string]string

func newFakeRegistry(token string) *fakeRegistry {
	return &fakeRegistry{token: token, statusUpdates: map[string]string{}}
}

func (f *fakeRegistry) authed(r *http.Request) bool {
	c, err := r.Cookie("auth_token")
	return err == nil && c.Value == f.token
}

func (f *fakeRegistry) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/user/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "secret" {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: f.token})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": creds["email"]})
	})

	mux.HandleFunc("/api/user/me", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(r) {
			http.Error(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": "admin@school.jp"})
	})

	mux.HandleFunc("/api/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(f.items)
		case http.MethodPost:
			if !f.authed(r) {
				http.Error(w, "login required", http.StatusUnauthorized)
				return
			}
			require.NoError(t, r.ParseMultipartForm(10<<20))
			fields := formFields{}
			for k := range r.MultipartForm.Value {
				fields[k] = r.FormValue(k)
			}
			f.created = append(f.created, fields)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "new-id"})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/items/", func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(r) {
			http.Error(w, "login required", http.StatusUnauthorized)
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, "/api/items/")
		switch {
		case r.Method == http.MethodPatch && strings.HasSuffix(rest, "/status"):
			id := strings.TrimSuffix(rest, "/status")
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			f.statusUpdates[id] = payload["status"]
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodDelete:
			f.deleted = append(f.deleted, rest)
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	return mux
}

func (f *fakeRegistry) serve(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return srv
}

func sampleWireItems() []map[string]any {
	return []map[string]any{
		{
			"id": "a1", "name": "Water Bottle", "found_location": "Gym",
			"storage_location": "Staff Room", "found_date": "2024-06-02T09:00:00Z",
			"expiration_date": "2024-09-02", "status": "unclaimed",
		},
		{
			"id": "b2", "name": "Umbrella", "found_location": "Entrance Hall",
			"storage_location": "Front Desk", "found_date": "2024-05-01T12:30:00Z",
			"expiration_date": "2024-08-01", "status": "claimed",
		},
	}
}
