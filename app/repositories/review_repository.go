package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/database"
)

// ReviewRepository handles database operations for Review.
type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{coll: database.Reviews()}
}

// All returns every review.
func (r *ReviewRepository) All(ctx context.Context) ([]models.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("reviews: find all: %w", err)
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("reviews: decode: %w", err)
	}
	return reviews, nil
}

// Insert adds a review and returns its generated id.
func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) (string, error) {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return "", fmt.Errorf("reviews: insert: %w", err)
	}
	return review.ID.Hex(), nil
}
