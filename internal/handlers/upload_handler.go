package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxUploadSize caps product images at 5MB.
const maxUploadSize = 5 << 20

type UploadHandler struct {
	uploadDir string
	logger    zerolog.Logger
}

func NewUploadHandler(uploadDir string, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir, logger: logger}
}

// Upload stores a product image from the multipart "image" field and
// returns its public URL. Only image/* content is accepted; the type is
// sniffed from the file bytes, not trusted from the client header.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "File too large or invalid form data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		h.logger.Error().Err(err).Msg("Error reading upload")
		respondError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	if !strings.HasPrefix(http.DetectContentType(sniff[:n]), "image/") {
		respondError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.logger.Error().Err(err).Msg("Error rewinding upload")
		respondError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.logger.Error().Err(err).Msg("Error creating upload directory")
		respondError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		h.logger.Error().Err(err).Msg("Error creating upload file")
		respondError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.logger.Error().Err(err).Msg("Error writing upload file")
		respondError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	h.logger.Info().Str("filename", filename).Int64("size", header.Size).Msg("Image uploaded")
	respondData(w, http.StatusOK, "Image uploaded successfully", map[string]string{
		"filename": filename,
		"url":      "/uploads/" + filename,
	})
}
