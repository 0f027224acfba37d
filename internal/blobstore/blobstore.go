// Package blobstore is the object-storage collaborator for item images.
package blobstore

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"
)

// Bucket under which all item images are stored.
const Bucket = "lost-items-images"

// Store is the blob-storage contract consumed by the registry service.
type Store interface {
	// Upload writes the object under key. Overwrites an existing object.
	Upload(ctx context.Context, key string, r io.Reader) error

	// PublicURL resolves the public URL of an object. The URL ends with
	// the key as its trailing path segment.
	PublicURL(key string) string

	// Remove deletes the given objects. Missing objects are not an error.
	Remove(ctx context.Context, keys []string) error
}

// NewObjectKey derives a collision-resistant object key from the original
// file name: unix-millis timestamp, a 9-char random base36 suffix, and the
// original extension.
func NewObjectKey(originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), randBase36(9), ext)
}

// KeyFromURL extracts the object key from a public URL (the trailing path
// segment). Returns "" for an empty URL.
func KeyFromURL(url string) string {
	if url == "" {
		return ""
	}
	return path.Base(url)
}

func randBase36(n int) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failure is not recoverable here; fall back to time
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	s := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	for len(s) < n {
		s = "0" + s
	}
	return s[:n]
}
