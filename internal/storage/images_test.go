package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("PUT", "/post-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	s, err := NewImages(dir)
	require.NoError(t, err)

	path, err := s.Save(multipartFile(t, "cat.PNG", "pretend-png-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "images/"))
	require.True(t, strings.HasSuffix(path, ".png"), "extension should be lowercased: %s", path)

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	require.Equal(t, "pretend-png-bytes", string(data))

	require.NoError(t, s.Remove(path))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(path)))
	require.True(t, os.IsNotExist(err))

	// removing again, or removing nothing, is fine
	require.NoError(t, s.Remove(path))
	require.NoError(t, s.Remove(""))
}

func TestSaveUniqueNames(t *testing.T) {
	s, err := NewImages(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	a, err := s.Save(multipartFile(t, "same.png", "a"))
	require.NoError(t, err)
	b, err := s.Save(multipartFile(t, "same.png", "b"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
