package database

import (
	"context"
	"fmt"
	"log"

	backoff "github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/brieflyhq/briefly/pkg/config"
)

// NewMongoDB connects to MongoDB once at process start. The client owns its
// own connection pooling; callers share the single handle and must close it
// through CloseDB on shutdown. Call only when a URI is configured.
func NewMongoDB(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not configured")
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connectivity with a bounded retry; transient startup races with
	// a container database are common in development.
	pingFn := func() error {
		pingCtx, pingCancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
		defer pingCancel()
		return client.Ping(pingCtx, readpref.Primary())
	}
	if err := backoff.Retry(pingFn, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("✅ MongoDB connected successfully")

	return client, nil
}

// CloseDB disconnects the MongoDB client
func CloseDB(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("failed to close mongodb connection: %w", err)
	}
	log.Println("✅ MongoDB connection closed")
	return nil
}
