package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flourshop/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content-type sniffing to see image/png.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func multipartUpload(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/uploads", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadStoresImage(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(dir, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "image", "wheat.png", pngHeader))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	filename := data["filename"].(string)
	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.Equal(t, "/uploads/"+filename, data["url"])

	stored, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestUploadRejectsNonImage(t *testing.T) {
	h := NewUploadHandler(t.TempDir(), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "image", "notes.txt", []byte("plain text, not an image")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Only image files are allowed", resp.Error)
}

func TestUploadMissingFile(t *testing.T) {
	h := NewUploadHandler(t.TempDir(), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Upload(rec, multipartUpload(t, "wrongfield", "wheat.png", pngHeader))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "No file uploaded", resp.Error)
}
