package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/platform/logger"
)

// maxPhotoSize bounds the multipart memory buffer for uploads.
const maxPhotoSize = 16 << 20

// UploadPhoto accepts a multipart file under the "photo" field, stores
// it in the blob store scoped to the job, and returns the retrieval
// URL.
func (h *handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "malformed multipart body",
		})
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "photo file is required",
		})
		return
	}
	defer file.Close()

	url, err := h.repairs.AttachPhoto(r.Context(), jobID, header.Filename, file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, PhotoResponse{URL: url})
}

// DownloadPhoto serves a stored photo; this is the endpoint the
// retrieval URLs point at. The object is buffered in full before the
// status line is written, so a blob store failure still produces a
// JSON error instead of a truncated body.
func (h *handler) DownloadPhoto(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.photos.Download(r.Context(), chi.URLParam(r, "id"), &buf); err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(r.Context(), "write photo response", logger.ErrorF(err))
	}
}
