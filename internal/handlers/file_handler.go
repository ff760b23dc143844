package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"dcdn-backend/dcdn/storage"
	"dcdn-backend/internal/dto"
	"dcdn-backend/internal/metrics"
	"dcdn-backend/internal/middleware"
	"dcdn-backend/utils/response"
)

type FileHandler struct {
	engine      *storage.Engine
	metrics     *metrics.Metrics
	maxFileSize int64
}

func NewFileHandler(engine *storage.Engine, m *metrics.Metrics, maxFileSize int64) *FileHandler {
	return &FileHandler{
		engine:      engine,
		metrics:     m,
		maxFileSize: maxFileSize,
	}
}

func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Allow some slack over the payload ceiling for multipart framing; the
	// engine enforces the exact limit.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1024*1024)

	if err := r.ParseMultipartForm(32 * 1024 * 1024); err != nil {
		response.Error(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, fmt.Sprintf("Failed to get file from form: %v", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, fmt.Sprintf("Failed to read file: %v", err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	isPublic := r.FormValue("is_public") == "true"
	principal := middleware.PrincipalFromContext(r.Context())

	id, err := h.engine.Upload(principal, header.Filename, contentType, data, isPublic)
	if err != nil {
		response.EngineError(w, err)
		return
	}

	h.metrics.UploadsTotal.Inc()
	h.metrics.UploadBytes.Add(float64(len(data)))

	log.Info().
		Str("id", id).
		Str("name", header.Filename).
		Int("size", len(data)).
		Bool("is_public", isPublic).
		Msg("file uploaded")

	resp := dto.FileUploadResponse{
		ID:       id,
		Filename: header.Filename,
		Size:     int64(len(data)),
		IsPublic: isPublic,
	}

	response.JSON(w, http.StatusCreated, response.SuccessResponse{
		Success: true,
		Data:    resp,
		Message: "File uploaded",
	})
}

func (h *FileHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "'id' not present in path")
		return
	}

	rec, err := h.engine.Metadata(id)
	if err != nil {
		response.EngineError(w, err)
		return
	}

	response.Success(w, rec, "")
}

func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "'id' not present in path")
		return
	}

	principal := middleware.PrincipalFromContext(r.Context())

	data, err := h.engine.Download(id, principal)
	if err != nil {
		if errors.Is(err, storage.ErrAccessDenied) {
			h.metrics.AuthFailures.Inc()
		}
		response.EngineError(w, err)
		return
	}
	h.metrics.DownloadsTotal.Inc()

	rec, err := h.engine.Metadata(id)
	if err != nil {
		response.EngineError(w, err)
		return
	}

	contentType := rec.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Name))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))

	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *FileHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	response.Success(w, h.engine.ListOwned(principal), "")
}

func (h *FileHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.engine.ListPublic(), "")
}

func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "'id' not present in path")
		return
	}

	principal := middleware.PrincipalFromContext(r.Context())

	if err := h.engine.Delete(id, principal); err != nil {
		if errors.Is(err, storage.ErrNotOwner) {
			h.metrics.AuthFailures.Inc()
		}
		response.EngineError(w, err)
		return
	}
	h.metrics.DeletesTotal.Inc()

	log.Info().Str("id", id).Msg("file deleted")

	response.JSON(w, http.StatusOK, response.SuccessResponse{
		Success: true,
		Data:    id,
		Message: "File deleted successfully",
	})
}
