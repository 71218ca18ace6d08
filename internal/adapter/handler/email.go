package handler

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brieflyhq/briefly/errors"
	dto "github.com/brieflyhq/briefly/internal/adapter/dto/summary"
)

// EmailHandler validates email dispatch requests. Actual delivery happens in
// the browser through the EmailJS SDK; the server only gates the request.
type EmailHandler struct {
	logger *zap.Logger
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(logger *zap.Logger) *EmailHandler {
	return &EmailHandler{logger: logger}
}

// SendEmails validates a summary/recipient pair before client-side dispatch
// @Summary      Prepare email dispatch
// @Description  Validates that a summary and at least one non-blank recipient exist; performs no delivery
// @Tags         Email
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SendEmailsRequest  true  "Summary and recipient list"
// @Success      200      {object}  dto.SendEmailsResponse
// @Failure      400      {object}  map[string]interface{}  "Summary and recipients are required"
// @Router       /api/send-emails [post]
func (h *EmailHandler) SendEmails(c echo.Context) error {
	var req dto.SendEmailsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Summary and recipients are required"))
	}

	recipients := filterRecipients(req.Recipients)
	if strings.TrimSpace(req.Summary) == "" || len(recipients) == 0 {
		return HandleError(h.logger, c, errors.ErrValidation("Summary and recipients are required"))
	}

	return HandleSuccess(h.logger, c, dto.SendEmailsResponse{
		Success:    true,
		Message:    fmt.Sprintf("Ready to send email to %d recipient(s)", len(recipients)),
		Summary:    req.Summary,
		Recipients: recipients,
	})
}

// filterRecipients trims each entry and drops blanks
func filterRecipients(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
