package sink

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"licworker/internal/models"
)

// ErrEmptyBatch is returned when an insert is attempted with no documents.
var ErrEmptyBatch = errors.New("no documents to insert")

// Mongo persists canonical documents into a MongoDB collection with
// insert-many semantics.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongo connects to MongoDB and binds the target collection.
func NewMongo(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)

		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Mongo{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// InsertBatch inserts a document batch and returns the inserted count.
func (m *Mongo) InsertBatch(ctx context.Context, docs []*models.License) (int, error) {
	if len(docs) == 0 {
		return 0, ErrEmptyBatch
	}

	batch := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, doc)
	}

	result, err := m.collection.InsertMany(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to insert documents: %w", err)
	}

	return len(result.InsertedIDs), nil
}

// EnsureIndexes creates the query indexes the record consumers rely on.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "business_name", Value: 1}}},
		{Keys: bson.D{{Key: "license_number", Value: 1}}},
		{Keys: bson.D{{Key: "license_status", Value: 1}}},
		{Keys: bson.D{{Key: "license_type", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "stateName", Value: 1}}},
		{Keys: bson.D{{Key: "smoke_shop", Value: 1}}},
	}

	if _, err := m.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// Close disconnects from MongoDB.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}
