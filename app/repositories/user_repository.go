package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/database"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{coll: database.Users()}
}

// FindByEmail looks up a user by email. Returns (nil, nil) when no user
// with that email exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by email: %w", err)
	}
	return &user, nil
}

// CreateIfAbsent inserts the user unless one with the same email already
// exists. Returns true when a new document was inserted.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return false, fmt.Errorf("users: insert: %w", err)
	}
	return true, nil
}

// All returns every registered user.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("users: find all: %w", err)
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("users: decode all: %w", err)
	}
	return users, nil
}

// PromoteToAdmin sets the user's role to admin. Returns the number of
// documents modified (0 when the id matched nothing or the user already
// was an admin).
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, IDFilter(id), bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		return 0, fmt.Errorf("users: promote: %w", err)
	}
	return res.ModifiedCount, nil
}

// Delete removes a user by id. Returns the number of documents deleted.
func (r *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return 0, fmt.Errorf("users: delete: %w", err)
	}
	return res.DeletedCount, nil
}

// RoleByEmail returns the stored role for the email, or "" when no user
// exists. Authorization checks always come here rather than trusting a
// role carried in a token.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

// Count returns the approximate number of users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("users: count: %w", err)
	}
	return n, nil
}
