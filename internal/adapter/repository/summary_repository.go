package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brieflyhq/briefly/internal/domain/entities"
	repo "github.com/brieflyhq/briefly/internal/domain/repositories"
)

const summariesCollection = "summaries"

type summaryRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewSummaryRepository creates a summary repository backed by MongoDB
func NewSummaryRepository(client *mongo.Client, database string) repo.SummaryRepository {
	db := client.Database(database)
	return &summaryRepository{
		db:   db,
		coll: db.Collection(summariesCollection),
	}
}

func (r *summaryRepository) Insert(ctx context.Context, rec *entities.SummaryRecord) (string, error) {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to insert summary: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (r *summaryRepository) ListRecent(ctx context.Context, limit int64) ([]entities.SummaryRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var records []entities.SummaryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}
	return records, nil
}

func (r *summaryRepository) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
