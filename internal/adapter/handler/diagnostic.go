package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/brieflyhq/briefly/internal/adapter/dto/summary"
	summaryuse "github.com/brieflyhq/briefly/internal/usecase/summary"
)

// DiagnosticHandler reports database connectivity for troubleshooting
type DiagnosticHandler struct {
	svc    summaryuse.Service
	logger *zap.Logger
}

// NewDiagnosticHandler creates a new diagnostic handler
func NewDiagnosticHandler(svc summaryuse.Service, logger *zap.Logger) *DiagnosticHandler {
	return &DiagnosticHandler{svc: svc, logger: logger}
}

// TestDB reports whether MongoDB is configured and reachable
// @Summary      Database connectivity check
// @Description  Reports whether a connection string is configured and enumerates collections as a liveness check
// @Tags         Diagnostics
// @Produce      json
// @Success      200  {object}  dto.DiagnosticsResponse
// @Failure      500  {object}  dto.DiagnosticsResponse  "Connection failed"
// @Router       /api/test-db [get]
func (h *DiagnosticHandler) TestDB(c echo.Context) error {
	if !h.svc.Configured() {
		return c.JSON(http.StatusOK, dto.DiagnosticsResponse{
			Error:  "MONGODB_URI not found in environment variables",
			HasURI: false,
		})
	}

	collections, err := h.svc.Collections(c.Request().Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("mongodb connection test failed", zap.Error(err))
		}
		return c.JSON(http.StatusInternalServerError, dto.DiagnosticsResponse{
			Error:   "MongoDB connection failed",
			Details: err.Error(),
			HasURI:  true,
		})
	}

	return c.JSON(http.StatusOK, dto.DiagnosticsResponse{
		Success:     true,
		Message:     "MongoDB connection successful",
		Collections: collections,
		HasURI:      true,
	})
}
