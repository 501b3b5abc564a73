package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Images stores uploaded post images on local disk under Dir. Stored paths
// are relative (e.g. "images/<uuid>.png"); clients prefix the base URL.
type Images struct {
	Dir string
}

func NewImages(dir string) (*Images, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Images{Dir: dir}, nil
}

// Save writes the uploaded file under a fresh UUID name, keeping the
// original extension, and returns the relative path to store.
func (s *Images) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(filepath.Base(s.Dir), name)), nil
}

// Remove deletes a previously stored image. Blank or already-missing paths
// are not errors.
func (s *Images) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	name := filepath.Base(relPath)
	if name == "." || name == "/" {
		return fmt.Errorf("bad image path %q", relPath)
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
