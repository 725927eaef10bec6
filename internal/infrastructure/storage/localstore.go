// Package storage keeps uploaded objects on a filesystem served under a
// public URL prefix.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/deskhub/deskhub/internal/application/user/usecases"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

var _ usecases.ObjectStore = (*LocalStore)(nil)

type LocalStore struct {
	fs        afero.Fs
	publicURL string
	logger    logger.Interface
}

// NewLocalStore roots the store at dir on the OS filesystem.
func NewLocalStore(dir, publicURL string, logger logger.Interface) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return NewStore(afero.NewBasePathFs(afero.NewOsFs(), dir), publicURL, logger), nil
}

// NewStore wraps any afero filesystem; tests use afero.NewMemMapFs.
func NewStore(fs afero.Fs, publicURL string, logger logger.Interface) *LocalStore {
	return &LocalStore{
		fs:        fs,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

func (s *LocalStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(path.Dir(clean), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}
	f, err := s.fs.OpenFile(clean, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = s.fs.Remove(clean)
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close object: %w", err)
	}

	s.logger.Debugw("object stored", "key", clean, "content_type", contentType)
	return s.publicURL + "/" + clean, nil
}

// Delete is a no-op for missing objects.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	clean, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fs.Remove(clean); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *LocalStore) KeyFromURL(url string) (string, bool) {
	prefix := s.publicURL + "/"
	if url == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	clean, err := cleanKey(strings.TrimPrefix(url, prefix))
	if err != nil {
		return "", false
	}
	return clean, true
}

// cleanKey rejects keys that would escape the store root.
func cleanKey(key string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(key))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return clean, nil
}
