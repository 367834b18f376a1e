package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered customer or administrator.
// Role is "admin" for administrators; anything else (including empty)
// is treated as a regular user.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name" validate:"required"`
	Email string             `bson:"email" json:"email" validate:"required,email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == "admin" }
