package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Bossbrown1770/AUTO-CAR/models"
)

// ContactRepository stores contact-form messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

// InquiryRepository stores car inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.CarInquiry) error
}

// MongoContactRepository implements ContactRepository.
type MongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a new MongoDB backed contact repository.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{collection: db.Collection("contact_messages")}
}

func (r *MongoContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if _, err := r.collection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// MongoInquiryRepository implements InquiryRepository.
type MongoInquiryRepository struct {
	collection *mongo.Collection
}

// NewMongoInquiryRepository creates a new MongoDB backed inquiry repository.
func NewMongoInquiryRepository(db *mongo.Database) *MongoInquiryRepository {
	return &MongoInquiryRepository{collection: db.Collection("car_inquiries")}
}

func (r *MongoInquiryRepository) Create(ctx context.Context, inquiry *models.CarInquiry) error {
	if _, err := r.collection.InsertOne(ctx, inquiry); err != nil {
		return fmt.Errorf("insert car inquiry: %w", err)
	}
	return nil
}
