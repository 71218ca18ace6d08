package summary

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/brieflyhq/briefly/internal/domain/entities"
	domainrepo "github.com/brieflyhq/briefly/internal/domain/repositories"
)

// DefaultInstruction is substituted when the caller supplies no custom prompt
const DefaultInstruction = "Summarize this meeting transcript in a clear, structured format with key points and action items."

// Generator produces text from a fully composed prompt
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service defines summary orchestration methods
type Service interface {
	// Configured reports whether a persistence backend is available
	Configured() bool

	// Generate composes a prompt from the transcript and instruction and
	// returns the generated summary text
	Generate(ctx context.Context, transcript, customPrompt string) (string, error)

	// Save persists a transcript/summary pair and returns the assigned id
	Save(ctx context.Context, transcript, summaryText, customPrompt, emailRecipients string) (string, error)

	// ListRecent returns at most limit records, newest first
	ListRecent(ctx context.Context, limit int64) ([]entities.SummaryRecord, error)

	// Collections enumerates database collections for diagnostics
	Collections(ctx context.Context) ([]string, error)
}

type service struct {
	repo      domainrepo.SummaryRepository // nil when MongoDB is not configured
	generator Generator
	logger    *zap.Logger
}

// NewService constructs a summary service. Pass a nil repository to run in
// degraded mode: saves are skipped, reads return empty.
func NewService(repo domainrepo.SummaryRepository, generator Generator, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

func (s *service) Configured() bool {
	return s.repo != nil
}

// BuildPrompt concatenates the instruction, a labeled transcript block and a
// closing directive into the single prompt sent to the model.
func BuildPrompt(instruction, transcript string) string {
	return fmt.Sprintf("%s\n\nMeeting Transcript:\n%s\n\nPlease provide a well-structured summary based on the instructions above.", instruction, transcript)
}

func (s *service) Generate(ctx context.Context, transcript, customPrompt string) (string, error) {
	instruction := customPrompt
	if strings.TrimSpace(instruction) == "" {
		instruction = DefaultInstruction
	}

	prompt := BuildPrompt(instruction, transcript)

	text, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("summary generation failed", zap.Error(err))
		}
		return "", err
	}
	return text, nil
}

func (s *service) Save(ctx context.Context, transcript, summaryText, customPrompt, emailRecipients string) (string, error) {
	if s.repo == nil {
		if s.logger != nil {
			s.logger.Info("mongodb not configured, skipping database save")
		}
		return "", nil
	}

	rec, err := entities.NewSummaryRecord(transcript, summaryText, customPrompt, emailRecipients)
	if err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("summary save failed", zap.Error(err))
		}
		return "", err
	}
	return id, nil
}

func (s *service) ListRecent(ctx context.Context, limit int64) ([]entities.SummaryRecord, error) {
	if s.repo == nil {
		return []entities.SummaryRecord{}, nil
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) Collections(ctx context.Context) ([]string, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("mongodb is not configured")
	}
	return s.repo.CollectionNames(ctx)
}

// TruncatePreview shortens a transcript for listing responses: the first 100
// characters plus an ellipsis marker, matching the stored-record preview shape.
func TruncatePreview(transcript string) string {
	runes := []rune(transcript)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	return string(runes) + "..."
}
