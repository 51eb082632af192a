package operatorRepo

import (
	"context"
	"errors"
	"time"

	"porter/database"
	"porter/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OperatorRepository stores dashboard operators.
type OperatorRepository interface {
	Create(ctx context.Context, op models.Operator) (string, error)
	GetByID(ctx context.Context, id string) (*models.Operator, error)
	GetByEmail(ctx context.Context, email string) (*models.Operator, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoOperatorRepo struct {
	coll *mongo.Collection
}

// NewMongoOperatorRepo returns an OperatorRepository backed by MongoDB.
func NewMongoOperatorRepo() OperatorRepository {
	db := database.MongoClient.Database("porter")
	return &mongoOperatorRepo{
		coll: db.Collection("operators"),
	}
}

// Create inserts a new operator and returns its ID.
func (r *mongoOperatorRepo) Create(ctx context.Context, op models.Operator) (string, error) {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	op.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, op); err != nil {
		return "", err
	}
	return op.ID, nil
}

// GetByID returns an operator by its ID.
func (r *mongoOperatorRepo) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	var op models.Operator
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&op); err != nil {
		return nil, err
	}
	return &op, nil
}

// GetByEmail returns an operator by email, or nil when none exists.
func (r *mongoOperatorRepo) GetByEmail(ctx context.Context, email string) (*models.Operator, error) {
	var op models.Operator
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&op)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// DeleteByID removes an operator by ID.
func (r *mongoOperatorRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("operator not found")
	}
	return nil
}
