package stateRepo

import (
	"context"
	"time"

	"porter/database"
	"porter/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StateRepository is the key-value store for dashboard state blobs. Payloads
// are opaque JSON; no schema is enforced beyond key + timestamp.
type StateRepository interface {
	Set(ctx context.Context, key, payload string) error
	Get(ctx context.Context, key string) (*models.DashboardState, error)
}

type mongoStateRepo struct {
	coll *mongo.Collection
}

// NewMongoStateRepo returns a StateRepository backed by MongoDB.
func NewMongoStateRepo() StateRepository {
	db := database.MongoClient.Database("porter")
	return &mongoStateRepo{
		coll: db.Collection("dashboard_state"),
	}
}

// Set upserts the blob stored under key.
func (r *mongoStateRepo) Set(ctx context.Context, key, payload string) error {
	state := models.DashboardState{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"key": key}, state, opts)
	return err
}

// Get returns the blob stored under key, or nil when none exists.
func (r *mongoStateRepo) Get(ctx context.Context, key string) (*models.DashboardState, error) {
	var state models.DashboardState
	err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&state)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}
