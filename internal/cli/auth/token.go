// Package auth persists the CLI's session token on disk.
package auth

import (
	"os"
	"path/filepath"
)

// FileTokenStore keeps the auth token in a single file, 0600.
type FileTokenStore struct {
	Path string
}

// DefaultTokenPath returns the token location used when no --token-file is
// given.
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lf_token"
	}
	return filepath.Join(home, ".lf_token")
}

// Save writes the token, creating parent directories as needed.
func (s FileTokenStore) Save(token string) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load reads the stored token. A missing file surfaces as os.IsNotExist so
// callers can treat it as "no session".
func (s FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// Trim any trailing newlines/spaces
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return string(b), nil
}

// Clear removes the token file. A file that is already gone is not an error.
func (s FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
