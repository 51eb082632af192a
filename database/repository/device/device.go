package deviceRepo

import (
	"context"
	"time"

	"porter/database"
	"porter/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeviceRepository tracks dashboard devices registered for push delivery.
type DeviceRepository interface {
	Register(ctx context.Context, d models.DashboardDevice) (string, error)
	All(ctx context.Context) ([]models.DashboardDevice, error)
	DeleteByToken(ctx context.Context, fcmToken string) error
}

type mongoDeviceRepo struct {
	coll *mongo.Collection
}

// NewMongoDeviceRepo returns a DeviceRepository backed by MongoDB.
func NewMongoDeviceRepo() DeviceRepository {
	db := database.MongoClient.Database("porter")
	return &mongoDeviceRepo{
		coll: db.Collection("dashboard_devices"),
	}
}

// Register upserts a device by FCM token so re-registration never duplicates.
func (r *mongoDeviceRepo) Register(ctx context.Context, d models.DashboardDevice) (string, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.RegisteredAt = time.Now()

	// Token already known: replace the row in place.
	res := r.coll.FindOneAndReplace(ctx, bson.M{"fcm_token": d.FCMToken}, d)
	if res.Err() == mongo.ErrNoDocuments {
		if _, err := r.coll.InsertOne(ctx, d); err != nil {
			return "", err
		}
		return d.ID, nil
	}
	if res.Err() != nil {
		return "", res.Err()
	}
	return d.ID, nil
}

// All returns every registered dashboard device.
func (r *mongoDeviceRepo) All(ctx context.Context) ([]models.DashboardDevice, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var devices []models.DashboardDevice
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// DeleteByToken prunes a device whose token the push transport rejected.
func (r *mongoDeviceRepo) DeleteByToken(ctx context.Context, fcmToken string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"fcm_token": fcmToken})
	return err
}
