package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a completed charge for the contents of a cart. CartIDs holds the
// cart row ids that were cleared by the purchase; MenuItemIDs the menu items
// bought, in their original string form (ObjectID hex or legacy seed id).
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	Price         float64            `bson:"price" json:"price" validate:"required,gt=0"`
	TransactionID string             `bson:"transactionId" json:"transactionId" validate:"required"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemIds" json:"menuItemIds"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
