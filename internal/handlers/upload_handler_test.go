package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"blogfeed/dto"
	"blogfeed/internal/auth"
	"blogfeed/internal/middleware"
	"blogfeed/internal/storage"
)

func newUploadApp(t *testing.T) (*fiber.App, *storage.Images, string) {
	t.Helper()
	images, err := storage.NewImages(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	tokens := auth.NewService([]byte("test-secret"), time.Hour)
	tok, err := tokens.Issue("64f0c34b2a3c4d5e6f708091", "a@b.co")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(middleware.BearerAuth(tokens))
	app.Put("/post-image", middleware.RequireAuth(), UploadImage(images))
	return app, images, tok
}

func uploadReq(t *testing.T, content, oldPath string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "pic.jpg")
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	if oldPath != "" {
		require.NoError(t, mw.WriteField("oldPath", oldPath))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	app, images, tok := newUploadApp(t)

	body, contentType := uploadReq(t, "jpeg-bytes", "")
	req := httptest.NewRequest("PUT", "/post-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "File stored.", out.Message)
	require.NotEmpty(t, out.FilePath)

	data, err := os.ReadFile(filepath.Join(images.Dir, filepath.Base(out.FilePath)))
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(data))
}

func TestUploadImageReplacesOld(t *testing.T) {
	app, images, tok := newUploadApp(t)

	// store a first image
	body, contentType := uploadReq(t, "old-bytes", "")
	req := httptest.NewRequest("PUT", "/post-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var first dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp.Body.Close()

	// upload a replacement naming the old path
	body, contentType = uploadReq(t, "new-bytes", first.FilePath)
	req = httptest.NewRequest("PUT", "/post-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, err = os.Stat(filepath.Join(images.Dir, filepath.Base(first.FilePath)))
	require.True(t, os.IsNotExist(err), "old image should be gone")
}

func TestUploadImageRequiresAuth(t *testing.T) {
	app, _, _ := newUploadApp(t)

	body, contentType := uploadReq(t, "bytes", "")
	req := httptest.NewRequest("PUT", "/post-image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUploadImageMissingFile(t *testing.T) {
	app, _, tok := newUploadApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("PUT", "/post-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
