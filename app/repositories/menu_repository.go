package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/database"
)

// MenuRepository handles database operations for MenuItem. The menu
// collection mixes legacy string _ids with ObjectIDs, so every id lookup
// goes through IDFilter.
type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{coll: database.Menu()}
}

// All returns the full menu.
func (r *MenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("menu: find all: %w", err)
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menu: decode all: %w", err)
	}
	return items, nil
}

// FindByID looks up a single item under either id shape. Returns
// (nil, nil) when nothing matches.
func (r *MenuRepository) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.coll.FindOne(ctx, IDFilter(id)).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("menu: find %s: %w", id, err)
	}
	return &item, nil
}

// FindByKeys loads the items whose _id matches any of the given string
// ids, under either id shape, and returns them indexed by the hex/string
// form of their _id. Ids that match nothing are simply absent from the map.
func (r *MenuRepository) FindByKeys(ctx context.Context, ids []string) (map[string]models.MenuItem, error) {
	index := map[string]models.MenuItem{}
	if len(ids) == 0 {
		return index, nil
	}

	var ors []bson.M
	for _, id := range ids {
		ors = append(ors, IDFilter(id))
	}
	cur, err := r.coll.Find(ctx, bson.M{"$or": ors})
	if err != nil {
		return nil, fmt.Errorf("menu: find by keys: %w", err)
	}
	var items []models.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menu: decode by keys: %w", err)
	}
	for _, item := range items {
		index[MenuItemKey(item)] = item
	}
	return index, nil
}

// MenuItemKey normalizes a menu item's _id to its string form: the hex of
// an ObjectID, or the raw value for legacy string ids.
func MenuItemKey(item models.MenuItem) string {
	switch id := item.ID.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", item.ID)
	}
}

// Insert adds a new menu item and returns its generated id.
func (r *MenuRepository) Insert(ctx context.Context, item *models.MenuItem) (string, error) {
	if item.ID == nil {
		item.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("menu: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Update overwrites the editable fields of an item under either id shape.
// Returns the number of documents matched.
func (r *MenuRepository) Update(ctx context.Context, id string, item *models.MenuItem) (int64, error) {
	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
		"recipe":   item.Recipe,
		"image":    item.Image,
	}}
	res, err := r.coll.UpdateOne(ctx, IDFilter(id), update)
	if err != nil {
		return 0, fmt.Errorf("menu: update %s: %w", id, err)
	}
	return res.MatchedCount, nil
}

// SetImage stores the public URL of an uploaded item image.
func (r *MenuRepository) SetImage(ctx context.Context, id, imageURL string) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, IDFilter(id), bson.M{"$set": bson.M{"image": imageURL}})
	if err != nil {
		return 0, fmt.Errorf("menu: set image %s: %w", id, err)
	}
	return res.MatchedCount, nil
}

// Delete removes an item under either id shape. Returns the number of
// documents deleted.
func (r *MenuRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return 0, fmt.Errorf("menu: delete %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

// Count returns the approximate number of menu items.
func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("menu: count: %w", err)
	}
	return n, nil
}
