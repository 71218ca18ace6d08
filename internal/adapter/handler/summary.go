package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brieflyhq/briefly/errors"
	dto "github.com/brieflyhq/briefly/internal/adapter/dto/summary"
	summaryuse "github.com/brieflyhq/briefly/internal/usecase/summary"
)

// listLimit caps the number of records a listing response may carry
const listLimit = 20

// SummaryHandler handles summary generation, persistence and listing
type SummaryHandler struct {
	svc    summaryuse.Service
	logger *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(svc summaryuse.Service, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, logger: logger}
}

// GenerateSummary produces a summary from a transcript
// @Summary      Generate meeting summary
// @Description  Sends the transcript and instruction prompt to the LLM and returns the generated text
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Param        request  body      dto.GenerateRequest  true  "Transcript and optional custom prompt"
// @Success      200      {object}  dto.GenerateResponse
// @Failure      400      {object}  map[string]interface{}  "Transcript is required"
// @Failure      500      {object}  map[string]interface{}  "Generation failed"
// @Router       /api/generate-summary [post]
func (h *SummaryHandler) GenerateSummary(c echo.Context) error {
	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Transcript is required"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Transcript is required"))
	}

	text, err := h.svc.Generate(c.Request().Context(), req.Transcript, req.CustomPrompt)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrGenerationFailed(err))
	}

	return HandleSuccess(h.logger, c, dto.GenerateResponse{Summary: text})
}

// SaveSummary persists a transcript/summary pair
// @Summary      Save summary
// @Description  Inserts the transcript/summary pair into MongoDB; no-ops with a success message when the database is not configured
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SaveRequest  true  "Transcript, summary and optional metadata"
// @Success      200      {object}  dto.SaveResponse
// @Failure      400      {object}  map[string]interface{}  "Summary and transcript are required"
// @Failure      500      {object}  map[string]interface{}  "Save failed"
// @Router       /api/save-summary [post]
func (h *SummaryHandler) SaveSummary(c echo.Context) error {
	var req dto.SaveRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Summary and transcript are required"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Summary and transcript are required"))
	}

	if !h.svc.Configured() {
		return HandleSuccess(h.logger, c, dto.SaveResponse{
			Success: true,
			Message: "Summary processed (database not configured)",
		})
	}

	id, err := h.svc.Save(c.Request().Context(), req.Transcript, req.Summary, req.CustomPrompt, req.EmailRecipients)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrPersistenceFailed(err))
	}

	return HandleSuccess(h.logger, c, dto.SaveResponse{
		Success: true,
		ID:      id,
		Message: "Summary saved successfully",
	})
}

// GetSummaries lists the most recent persisted summaries
// @Summary      List summaries
// @Description  Returns the 20 most recent records, newest first, with truncated transcript previews
// @Tags         Summary
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Failure      500  {object}  map[string]interface{}  "Listing failed"
// @Router       /api/get-summaries [get]
func (h *SummaryHandler) GetSummaries(c echo.Context) error {
	if !h.svc.Configured() {
		return HandleSuccess(h.logger, c, dto.ListResponse{
			Success:   true,
			Summaries: []dto.RecordPreview{},
			Message:   "Database not configured",
		})
	}

	records, err := h.svc.ListRecent(c.Request().Context(), listLimit)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrListFailed(err))
	}

	previews := make([]dto.RecordPreview, 0, len(records))
	for _, rec := range records {
		previews = append(previews, dto.RecordPreview{
			ID:              rec.ID.Hex(),
			Transcript:      summaryuse.TruncatePreview(rec.Transcript),
			Summary:         rec.Summary,
			CustomPrompt:    rec.CustomPrompt,
			EmailRecipients: rec.EmailRecipients,
			CreatedAt:       rec.CreatedAt,
		})
	}

	return HandleSuccess(h.logger, c, dto.ListResponse{
		Success:   true,
		Summaries: previews,
	})
}
