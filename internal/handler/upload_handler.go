package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/media"
	"github.com/gsccapital/website/api/internal/middleware"
	"github.com/gsccapital/website/api/internal/monitoring"
)

// UploadHandler proxies image uploads to the configured media host.
type UploadHandler struct {
	uploader media.Uploader
}

// NewUploadHandler wires a handler backed by uploader.
func NewUploadHandler(uploader media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload handles POST /api/upload requests. The file is validated before the
// host is contacted.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		monitoring.UploadsTotal.WithLabelValues("rejected").Inc()
		return Error(c, http.StatusBadRequest, media.ErrMissingFile.Error())
	}

	file, err := media.ReadFile(fileHeader)
	if err != nil {
		monitoring.UploadsTotal.WithLabelValues("rejected").Inc()
		switch {
		case errors.Is(err, media.ErrMissingFile), errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrTooLarge):
			return Error(c, http.StatusBadRequest, err.Error())
		default:
			return Error(c, http.StatusBadRequest, "unable to read file")
		}
	}

	url, err := h.uploader.Upload(c.Request().Context(), file)
	if err != nil {
		monitoring.UploadsTotal.WithLabelValues("host_error").Inc()
		slog.ErrorContext(c.Request().Context(), "image upload failed",
			slog.String("request_id", middleware.RequestIDFromContext(c)),
			slog.String("file", file.Name),
			slog.Any("err", err),
		)
		return Error(c, http.StatusInternalServerError, "failed to upload image")
	}

	monitoring.UploadsTotal.WithLabelValues("ok").Inc()
	return Success(c, http.StatusOK, dto.UploadResponse{ImageURL: url})
}
