package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bossbrown1770/AUTO-CAR/models"
)

// CarRepository defines data access for car listings.
type CarRepository interface {
	FindByID(ctx context.Context, carID string) (*models.Car, error)
	Find(ctx context.Context, search string, skip, limit int64) ([]models.Car, error)
	Create(ctx context.Context, car *models.Car) error
	Update(ctx context.Context, carID string, updates bson.M) (int64, error)
	Delete(ctx context.Context, carID string) (int64, error)
	MarkSold(ctx context.Context, carID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// MongoCarRepository implements CarRepository against the cars collection.
type MongoCarRepository struct {
	collection *mongo.Collection
}

// NewMongoCarRepository creates a new MongoDB backed car repository.
func NewMongoCarRepository(db *mongo.Database) *MongoCarRepository {
	return &MongoCarRepository{collection: db.Collection("cars")}
}

func (r *MongoCarRepository) FindByID(ctx context.Context, carID string) (*models.Car, error) {
	var car models.Car
	err := r.collection.FindOne(ctx, bson.M{"car_id": carID}).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find car: %w", err)
	}
	return &car, nil
}

// Find lists cars, optionally filtered by a case-insensitive search over
// make, model and color.
func (r *MongoCarRepository) Find(ctx context.Context, search string, skip, limit int64) ([]models.Car, error) {
	filter := bson.M{}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"make": regex},
			bson.M{"model": regex},
			bson.M{"color": regex},
		}}
	}

	findOptions := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("decode cars: %w", err)
	}
	return cars, nil
}

func (r *MongoCarRepository) Create(ctx context.Context, car *models.Car) error {
	if _, err := r.collection.InsertOne(ctx, car); err != nil {
		return fmt.Errorf("insert car: %w", err)
	}
	return nil
}

func (r *MongoCarRepository) Update(ctx context.Context, carID string, updates bson.M) (int64, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"car_id": carID}, bson.M{"$set": updates})
	if err != nil {
		return 0, fmt.Errorf("update car: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *MongoCarRepository) Delete(ctx context.Context, carID string) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"car_id": carID})
	if err != nil {
		return 0, fmt.Errorf("delete car: %w", err)
	}
	return res.DeletedCount, nil
}

// MarkSold flips a listing to sold. A single last-writer-wins update; the
// payment record remains the source of truth for the sale itself.
func (r *MongoCarRepository) MarkSold(ctx context.Context, carID string) (int64, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"car_id": carID},
		bson.M{"$set": bson.M{"status": models.CarStatusSold}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark car sold: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *MongoCarRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoCarRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
