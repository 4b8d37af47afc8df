package store

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/cliquechain/pkg/series"
)

const reportCollection = "reports"

// MongoStore persists reports in a MongoDB collection. Documents use the
// report ID as _id, so Save is an idempotent upsert.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds connection settings for the Mongo backend.
type MongoConfig struct {
	URI      string // e.g. "mongodb://localhost:27017"
	Database string // database name, e.g. "cliquechain"
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(reportCollection),
	}, nil
}

// Save upserts a report by its ID.
func (s *MongoStore) Save(ctx context.Context, report *series.Report) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": report.ID},
		report,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save report %s: %w", report.ID, err)
	}
	return nil
}

// Get returns the report with the given ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*series.Report, error) {
	var report series.Report
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound("id " + id)
	}
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return &report, nil
}

// Latest returns the most recently generated report covering max.
func (s *MongoStore) Latest(ctx context.Context, max int) (*series.Report, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generated_at", Value: -1}})

	var report series.Report
	err := s.coll.FindOne(ctx, bson.M{"max": max}, opts).Decode(&report)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(fmt.Sprintf("max %d", max))
	}
	if err != nil {
		return nil, fmt.Errorf("latest report for max %d: %w", max, err)
	}
	return &report, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
