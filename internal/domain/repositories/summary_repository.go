package repositories

import (
	"context"

	"github.com/brieflyhq/briefly/internal/domain/entities"
)

// SummaryRepository defines persistence operations for summary records
type SummaryRepository interface {
	// Insert writes a new record and returns its assigned identifier
	Insert(ctx context.Context, rec *entities.SummaryRecord) (string, error)

	// ListRecent returns at most limit records ordered newest-first
	ListRecent(ctx context.Context, limit int64) ([]entities.SummaryRecord, error)

	// CollectionNames enumerates the database's collections as a liveness check
	CollectionNames(ctx context.Context) ([]string, error)
}
