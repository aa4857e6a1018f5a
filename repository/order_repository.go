package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Bossbrown1770/AUTO-CAR/models"
)

// OrderRepository defines data access for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Count(ctx context.Context) (int64, error)
}

// MongoOrderRepository implements OrderRepository against the orders collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new MongoDB backed order repository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *MongoOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *MongoOrderRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
