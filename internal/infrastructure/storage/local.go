package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"superhero-backend/internal/config"
	"superhero-backend/internal/domains/superhero"
)

// UploadsRoute is the path prefix the router serves local uploads from.
const UploadsRoute = "/uploads"

// LocalStorage writes image blobs into a managed directory. The HTTP
// layer serves that directory statically under UploadsRoute, so the
// returned URLs resolve against the API host.
type LocalStorage struct {
	dir     string
	baseURL string // "" means root-relative URLs
}

func NewLocalStorage(cfg config.StorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", cfg.LocalDir, err)
	}
	return &LocalStorage{
		dir:     cfg.LocalDir,
		baseURL: cfg.PublicURL,
	}, nil
}

func (s *LocalStorage) Store(ctx context.Context, data []byte, originalFilename, contentType string) (superhero.Image, error) {
	publicID := newPublicID(originalFilename)

	path := filepath.Join(s.dir, publicID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return superhero.Image{}, fmt.Errorf("failed to write upload %s: %w", publicID, err)
	}

	return superhero.Image{
		URL:      s.baseURL + UploadsRoute + "/" + publicID,
		PublicID: publicID,
	}, nil
}

// Delete removes the blob. A missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, publicID string) error {
	// Base guards against path traversal through a crafted public id.
	path := filepath.Join(s.dir, filepath.Base(publicID))

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete upload %s: %w", publicID, err)
	}
	return nil
}
