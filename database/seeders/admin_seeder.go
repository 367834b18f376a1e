package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/config"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin makes sure the bootstrap administrator exists. Every later
// admin is promoted through the API by an existing one; this seeder only
// breaks the chicken-and-egg.
func SeedAdmin(ctx context.Context, db *mongo.Database) error {
	email := config.Get("ADMIN_EMAIL", "admin@bistroboss.local")
	coll := db.Collection("users")

	n, err := coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = coll.InsertOne(ctx, models.User{
		Name:  "Bistro Admin",
		Email: email,
		Role:  "admin",
	})
	return err
}
