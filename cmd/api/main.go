package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/brieflyhq/briefly/pkg/validator"

	"github.com/brieflyhq/briefly/internal/adapter/handler"
	"github.com/brieflyhq/briefly/internal/adapter/repository"
	"github.com/brieflyhq/briefly/internal/domain/repositories"
	"github.com/brieflyhq/briefly/internal/infrastructure/database"
	summaryuse "github.com/brieflyhq/briefly/internal/usecase/summary"
	pkgai "github.com/brieflyhq/briefly/pkg/ai"
	"github.com/brieflyhq/briefly/pkg/config"
)

// @title           Briefly API
// @version         1.0
// @description     Meeting transcript summarization service backed by Groq and MongoDB

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	log.Println("🔧 Initializing dependencies...")

	// Initialize MongoDB when a connection string is configured. Without one
	// the service runs in degraded mode: saves are skipped, reads return empty.
	var summaryRepo repositories.SummaryRepository
	if cfg.MongoConfigured() {
		log.Println("📦 Connecting to MongoDB...")
		client, err := database.NewMongoDB(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer database.CloseDB(client)
		summaryRepo = repository.NewSummaryRepository(client, cfg.Mongo.Database)
	} else {
		log.Println("⚠️  MONGODB_URI not set, running without persistence")
	}

	// Initialize Groq client
	log.Println("🤖 Initializing Groq client...")
	if cfg.Groq.APIKey == "" {
		log.Println("⚠️  GROQ_API_KEY not set, summary generation will fail")
	}
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	// Initialize summary service and handlers
	log.Println("⚙️  Initializing handlers...")
	summaryService := summaryuse.NewService(summaryRepo, groqClient, logger)
	summaryHandler := handler.NewSummaryHandler(summaryService, logger)
	emailHandler := handler.NewEmailHandler(logger)
	diagHandler := handler.NewDiagnosticHandler(summaryService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, summaryHandler, emailHandler, diagHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
