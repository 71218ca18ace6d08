package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brieflyhq/briefly/errors"
)

// errs is the wire shape for every failure response
type errs struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// getRequestID reads X-Request-ID from the request, generating one when the
// caller sent none so log lines stay correlatable.
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

// HandleError centralizes error handling and logging. AppError values keep
// their status and message; anything else becomes a 500.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		body := errs{Error: appErr.Message}
		if appErr.Raw != nil {
			body.Details = appErr.Raw.Error()
		}
		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, errs{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}

// HandleSuccess logs and writes a success response with the given body
func HandleSuccess(logger *zap.Logger, c echo.Context, body interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, body)
}
