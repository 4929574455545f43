// Package filestore keeps uploaded listing images on disk. Callers only
// ever see the stable generated filename; the listing row stores that
// name, never the bytes.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Save writes the upload under a uuid-prefixed name so concurrent uploads
// of same-named files never collide, and returns that name.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + "-" + filepath.Base(originalName)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}
