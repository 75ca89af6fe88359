// Package storage keeps uploaded media on the local filesystem under a
// single directory, keyed by generated opaque basenames that preserve the
// original file extension.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadPath is the URL prefix media is served from.
const UploadPath = "/uploads/"

// URL returns the retrieval URL for a stored basename.
func URL(basename string) string {
	return UploadPath + basename
}

// MediaStore saves and removes uploaded files.
type MediaStore struct {
	dir string
}

// NewMediaStore creates the upload directory if needed and returns a store
// over it.
func NewMediaStore(dir string) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &MediaStore{dir: dir}, nil
}

// Save writes the uploaded file under a fresh uuid basename, keeping the
// original extension, and returns the basename.
func (s *MediaStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	basename := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, basename))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return basename, nil
}

// Path resolves a stored basename to its filesystem path. Names that are not
// plain basenames, and names with no file behind them, report fs.ErrNotExist.
func (s *MediaStore) Path(basename string) (string, error) {
	if basename == "" || basename != filepath.Base(basename) {
		return "", fs.ErrNotExist
	}
	path := filepath.Join(s.dir, basename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes the given basenames, each distinct name exactly once.
// Already-missing files are not an error.
func (s *MediaStore) Remove(basenames ...string) error {
	seen := make(map[string]bool, len(basenames))
	for _, basename := range basenames {
		if basename == "" || seen[basename] {
			continue
		}
		seen[basename] = true
		err := os.Remove(filepath.Join(s.dir, basename))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove media file %s: %w", basename, err)
		}
	}
	return nil
}
