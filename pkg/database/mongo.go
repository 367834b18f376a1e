// Package database owns the MongoDB client used by every repository.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/bistro/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect opens the Mongo client, verifies the connection with a ping, and
// selects the configured database. Returns an error instead of exiting so
// the caller can shut down gracefully.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDB())
	return nil
}

// Disconnect closes the Mongo client. Safe to call when never connected.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// DB returns the selected database handle.
func DB() *mongo.Database { return db }

// Collection returns a handle to the named collection, or nil before
// Connect. Repositories built before Connect (route listing, tests with
// fakes) hold a nil handle and must not be used against the database.
func Collection(name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}

// Handles for the collections the server works with.

func Users() *mongo.Collection    { return Collection("users") }
func Menu() *mongo.Collection     { return Collection("menu") }
func Reviews() *mongo.Collection  { return Collection("reviews") }
func Carts() *mongo.Collection    { return Collection("carts") }
func Payments() *mongo.Collection { return Collection("payments") }
