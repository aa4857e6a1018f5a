package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bossbrown1770/AUTO-CAR/models"
)

// TransactionRepository defines data access for payment transactions.
// Transactions are append-then-update records: created once per checkout
// session, mutated only by status reconciliation, never deleted.
type TransactionRepository interface {
	Insert(ctx context.Context, tx *models.PaymentTransaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	// TransitionStatus performs a conditional status update: the write only
	// lands if the stored status still equals from. The returned count is 1
	// when this caller won the transition and 0 when another writer got
	// there first.
	TransitionStatus(ctx context.Context, sessionID, from, to string) (int64, error)
	UpdateStatus(ctx context.Context, sessionID, status string) (int64, error)
	SumAmountByStatus(ctx context.Context, status string) (float64, error)
}

// MongoTransactionRepository implements TransactionRepository against the
// payment_transactions collection. The collection carries a unique index on
// session_id.
type MongoTransactionRepository struct {
	collection *mongo.Collection
}

// NewMongoTransactionRepository creates a new MongoDB backed transaction repository.
func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{collection: db.Collection("payment_transactions")}
}

func (r *MongoTransactionRepository) Insert(ctx context.Context, tx *models.PaymentTransaction) error {
	if _, err := r.collection.InsertOne(ctx, tx); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *MongoTransactionRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return &tx, nil
}

func (r *MongoTransactionRepository) TransitionStatus(ctx context.Context, sessionID, from, to string) (int64, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "payment_status": from},
		bson.M{"$set": bson.M{"payment_status": to}},
	)
	if err != nil {
		return 0, fmt.Errorf("transition transaction status: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *MongoTransactionRepository) UpdateStatus(ctx context.Context, sessionID, status string) (int64, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"session_id": sessionID},
		bson.M{"$set": bson.M{"payment_status": status}},
	)
	if err != nil {
		return 0, fmt.Errorf("update transaction status: %w", err)
	}
	return res.ModifiedCount, nil
}

// SumAmountByStatus totals transaction amounts in a given status, used for
// dashboard revenue reporting.
func (r *MongoTransactionRepository) SumAmountByStatus(ctx context.Context, status string) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"payment_status": status}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode aggregation: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// EnsureIndexes creates the unique session_id index the reconciliation
// pipeline depends on.
func (r *MongoTransactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "session_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create session_id index: %w", err)
	}
	return nil
}
