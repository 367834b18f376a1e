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

// CartRepository handles database operations for CartItem.
type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository() *CartRepository {
	return &CartRepository{coll: database.Carts()}
}

// FindByEmail returns the cart rows belonging to an email. An unknown
// email yields an empty slice, not an error.
func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("carts: find by email: %w", err)
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("carts: decode: %w", err)
	}
	return items, nil
}

// Insert adds a cart row and returns its generated id. Duplicate rows for
// the same menu item are allowed; each occurrence counts as quantity one.
func (r *CartRepository) Insert(ctx context.Context, item *models.CartItem) (string, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return "", fmt.Errorf("carts: insert: %w", err)
	}
	return item.ID.Hex(), nil
}

// Delete removes a single cart row by id, under either id shape. Returns
// the number of documents deleted (0 for an unknown id).
func (r *CartRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return 0, fmt.Errorf("carts: delete %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

// DeleteMany removes the cart rows with the given ids. Empty ids are
// skipped, and an id set with nothing usable deletes nothing rather than
// running an unbounded filter. Already-deleted rows simply don't count,
// so a replayed clearance is a no-op.
func (r *CartRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	filter, ok := IDFilterAny(ids)
	if !ok {
		return 0, nil
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("carts: delete many: %w", err)
	}
	return res.DeletedCount, nil
}
