package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item a user has placed in their cart but not yet
// paid for. MenuItemID keeps the string form of the referenced menu item
// id so legacy hex-string ids survive unchanged.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId" validate:"required"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price" validate:"required,gt=0"`
}
