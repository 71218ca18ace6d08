package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brieflyhq/briefly/pkg/config"
	"github.com/brieflyhq/briefly/web"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	summaryHandler *SummaryHandler
	emailHandler   *EmailHandler
	diagHandler    *DiagnosticHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, summaryHandler *SummaryHandler, emailHandler *EmailHandler, diagHandler *DiagnosticHandler) *Router {
	return &Router{
		cfg:            cfg,
		summaryHandler: summaryHandler,
		emailHandler:   emailHandler,
		diagHandler:    diagHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API group
	api := e.Group("/api")
	api.POST("/generate-summary", rt.summaryHandler.GenerateSummary)
	api.POST("/save-summary", rt.summaryHandler.SaveSummary)
	api.GET("/get-summaries", rt.summaryHandler.GetSummaries)
	api.POST("/send-emails", rt.emailHandler.SendEmails)
	api.GET("/test-db", rt.diagHandler.TestDB)

	// Embedded single-page client
	e.StaticFS("/", echo.MustSubFS(web.Assets, "static"))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
