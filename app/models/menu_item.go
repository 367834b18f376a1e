package models

// MenuItem is a dish on the menu.
//
// ID is deliberately `any`: the collection was first seeded from a JSON dump
// whose _id values are plain hex strings, while documents inserted through
// the API get real ObjectIDs. Both shapes must decode, and both must survive
// a round trip back to the client unchanged.
type MenuItem struct {
	ID       any     `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string  `bson:"name" json:"name" validate:"required"`
	Recipe   string  `bson:"recipe" json:"recipe" validate:"required"`
	Image    string  `bson:"image" json:"image"`
	Category string  `bson:"category" json:"category" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"required,gt=0"`
}
