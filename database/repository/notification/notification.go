package notificationRepo

import (
	"context"
	"time"

	"porter/database"
	"porter/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository is the audit log for relayed change notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (string, error)
	Recent(ctx context.Context, limit int64) ([]models.Notification, error)
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database("porter")
	return &mongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}

// Create inserts a new audit row and returns its ID.
func (r *mongoNotificationRepo) Create(ctx context.Context, n models.Notification) (string, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// Recent returns the newest audit rows, most recent first.
func (r *mongoNotificationRepo) Recent(ctx context.Context, limit int64) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.Notification
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
