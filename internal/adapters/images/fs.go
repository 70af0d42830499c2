// Package images implementa ports/images: disco local (dev) o MinIO/S3.
package images

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FSStore escribe en Dir y devuelve PublicPrefix + key. El router sirve Dir en PublicPrefix.
type FSStore struct {
	Dir          string
	PublicPrefix string
}

func NewFSStore(dir, publicPrefix string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	if publicPrefix == "" {
		publicPrefix = "/img"
	}
	return &FSStore{Dir: dir, PublicPrefix: strings.TrimRight(publicPrefix, "/")}, nil
}

func (s *FSStore) Put(ctx context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	name := filepath.Base(filepath.Clean("/" + key))
	if name == "/" || name == "." {
		return "", fmt.Errorf("invalid image key %q", key)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close image file: %w", err)
	}
	return path.Join(s.PublicPrefix, name), nil
}
