package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk is a filesystem-backed Store. Objects live under root/<bucket>/<key>
// and are served publicly by the HTTP layer under baseURL/<bucket>/<key>.
type Disk struct {
	root    string
	baseURL string
	bucket  string
}

// NewDisk creates the store and ensures the bucket directory exists.
// baseURL is the public prefix under which the root directory is served,
// e.g. "http://localhost:8081/files".
func NewDisk(root, baseURL, bucket string) (*Disk, error) {
	if bucket == "" {
		return nil, errors.New("empty bucket name")
	}
	dir := filepath.Join(root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create bucket dir: %w", err)
	}
	return &Disk{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
	}, nil
}

// validKey rejects keys that could escape the bucket directory.
func validKey(key string) error {
	if key == "" {
		return errors.New("empty object key")
	}
	if strings.ContainsAny(key, "/\\") || key == "." || key == ".." {
		return fmt.Errorf("invalid object key: %q", key)
	}
	return nil
}

func (d *Disk) Upload(ctx context.Context, key string, r io.Reader) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(d.root, d.bucket, key))
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("write object: %w", err)
	}
	return f.Close()
}

func (d *Disk) PublicURL(key string) string {
	return d.baseURL + "/" + d.bucket + "/" + key
}

func (d *Disk) Remove(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var firstErr error
	for _, key := range keys {
		if err := validKey(key); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		err := os.Remove(filepath.Join(d.root, d.bucket, key))
		if err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = fmt.Errorf("remove object %q: %w", key, err)
		}
	}
	return firstErr
}
