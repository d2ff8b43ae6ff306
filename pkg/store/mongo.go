package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/you-dian-tian/graphwalk/pkg/errors"
)

// Collection name within the configured database.
const reportsCollection = "reports"

// MongoStore persists saved reports in a MongoDB collection, keyed by
// report id (_id).
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB deployment at uri and uses the
// given database. The connection is verified with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(reportsCollection),
	}, nil
}

// Put saves a report, replacing any existing document with the same id.
func (s *MongoStore) Put(ctx context.Context, rep SavedReport) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": rep.ID},
		rep,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "save report %s", rep.ID)
	}
	return nil
}

// Get fetches a report by id.
func (s *MongoStore) Get(ctx context.Context, id string) (SavedReport, error) {
	var rep SavedReport
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rep)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return SavedReport{}, errNotFound(id)
	}
	if err != nil {
		return SavedReport{}, apperrors.Wrap(apperrors.ErrCodeInternal, err, "fetch report %s", id)
	}
	return rep, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
