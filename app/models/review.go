package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is customer feedback shown on the public site.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name" validate:"required"`
	Details string             `bson:"details" json:"details" validate:"required"`
	Rating  float64            `bson:"rating" json:"rating" validate:"required,gte=0,max=5"`
}
