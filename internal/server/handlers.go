package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/maauso/video-thumbnails/internal/media"
	"github.com/maauso/video-thumbnails/internal/thumbnail"
)

// ThumbnailService is the use case the handlers call.
type ThumbnailService interface {
	Produce(ctx context.Context, sourceRef string) (string, error)
	ClearCache(ctx context.Context) thumbnail.Report
}

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	service   ThumbnailService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service ThumbnailService, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		service:   service,
		validator: validator.New(),
		logger:    logger,
	}
}

// Health handles GET /health requests.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ProduceThumbnail handles POST /thumbnails requests.
func (h *Handlers) ProduceThumbnail(w http.ResponseWriter, r *http.Request) {
	var req ThumbnailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request body",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, "invalid JSON body", "INVALID_JSON")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.WarnContext(r.Context(), "request validation failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return
	}

	uri, err := h.service.Produce(r.Context(), req.SourceReference)
	if err != nil {
		status, code := classify(err)
		h.logger.ErrorContext(r.Context(), "failed to produce thumbnail",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("source", req.SourceReference),
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, ErrorResponse{
			Error:       err.Error(),
			Code:        code,
			Placeholder: thumbnail.PlaceholderDataURI,
		})
		return
	}

	writeJSON(w, http.StatusOK, ThumbnailResponse{DataURI: uri})
}

// ClearCache handles DELETE /thumbnails requests. It always succeeds.
func (h *Handlers) ClearCache(w http.ResponseWriter, r *http.Request) {
	report := h.service.ClearCache(r.Context())

	writeJSON(w, http.StatusOK, ClearCacheResponse{
		Report:     report.String(),
		Entries:    report.Entries,
		FreedBytes: report.FreedBytes,
		FreedMB:    report.FreedMB(),
		Failed:     report.Failed,
	})
}

// classify maps a Produce error to an HTTP status and error code.
func classify(err error) (int, string) {
	var (
		extractionErr *media.ExtractionError
		ffmpegErr     *media.FFmpegError
		launchErr     *media.LaunchError
	)
	switch {
	case errors.Is(err, media.ErrToolNotFound):
		return http.StatusInternalServerError, "TOOL_NOT_FOUND"
	case errors.As(err, &launchErr):
		return http.StatusInternalServerError, "TOOL_LAUNCH_FAILED"
	case errors.As(err, &extractionErr), errors.As(err, &ffmpegErr):
		return http.StatusUnprocessableEntity, "EXTRACTION_FAILED"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "REQUEST_CANCELLED"
	default:
		return http.StatusInternalServerError, "THUMBNAIL_FAILED"
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
