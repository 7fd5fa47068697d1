// Package storage saves uploaded files under a shared local directory and
// hands back the stored filename. Deletes are best-effort: a missing file is
// logged, never surfaced.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SubdirListings = "listings"
	SubdirProfiles = "profiles"
	SubdirChat     = "chat"

	// MaxUploadBytes caps a single request body.
	MaxUploadBytes = 16 << 20
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type Store struct {
	root string
	log  *zap.SugaredLogger
}

// NewStore ensures the upload subdirectories exist under root.
func NewStore(root string, log *zap.SugaredLogger) (*Store, error) {
	for _, sub := range []string{SubdirListings, SubdirProfiles, SubdirChat} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &Store{root: root, log: log}, nil
}

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save writes the uploaded file into subdir under a randomized name and
// returns the stored filename. Randomization keeps concurrent uploads of
// identically named files from colliding.
func (s *Store) Save(file *multipart.FileHeader, subdir string) (string, error) {
	if !Allowed(file.Filename) {
		return "", fmt.Errorf("file type not allowed: %s", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(s.root, subdir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file. Failures are logged and swallowed.
func (s *Store) Remove(subdir, filename string) {
	if filename == "" {
		return
	}
	path := filepath.Join(s.root, subdir, filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warnw("failed to remove stored file", "path", path, "error", err)
	}
}

// URL returns the public path a stored file is served from.
func (s *Store) URL(subdir, filename string) string {
	return "/static/uploads/" + subdir + "/" + filename
}
