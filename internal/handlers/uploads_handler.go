package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/appdev-labs/photofeed/internal/middleware"
	"github.com/appdev-labs/photofeed/internal/storage"
)

// UploadsHandler serves stored media. Access requires a session: no session
// is 403 rather than a login redirect, and an unknown file is 404.
type UploadsHandler struct {
	media *storage.MediaStore
}

// NewUploadsHandler creates a new UploadsHandler.
func NewUploadsHandler(media *storage.MediaStore) *UploadsHandler {
	return &UploadsHandler{media: media}
}

// RegisterUploadRoutes registers the media retrieval route.
func (h *UploadsHandler) RegisterUploadRoutes(e *echo.Echo) {
	e.GET("/uploads/:filename", h.Retrieve)
}

// Retrieve streams one stored media file.
func (h *UploadsHandler) Retrieve(c echo.Context) error {
	if middleware.Logname(c) == "" {
		return echo.NewHTTPError(http.StatusForbidden, "Authentication required")
	}
	path, err := h.media.Path(c.Param("filename"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	return c.File(path)
}
