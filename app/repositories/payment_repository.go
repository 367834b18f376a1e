package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/database"
)

// PaymentRepository handles database operations for Payment.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{coll: database.Payments()}
}

// Insert persists a payment, stamping CreatedAt, and returns its id.
func (r *PaymentRepository) Insert(ctx context.Context, payment *models.Payment) (string, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return "", fmt.Errorf("payments: insert: %w", err)
	}
	return payment.ID.Hex(), nil
}

// FindByEmail returns the payment history for an email, newest first.
func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("payments: find by email: %w", err)
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("payments: decode: %w", err)
	}
	return payments, nil
}

// All returns every payment on record.
func (r *PaymentRepository) All(ctx context.Context) ([]models.Payment, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("payments: find all: %w", err)
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("payments: decode all: %w", err)
	}
	return payments, nil
}

// Count returns the approximate number of payments (orders).
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("payments: count: %w", err)
	}
	return n, nil
}

// RevenueTotal sums the price of all payments server-side.
func (r *PaymentRepository) RevenueTotal(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("payments: revenue: %w", err)
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("payments: revenue decode: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
