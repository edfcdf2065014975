// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
//
// Password holds the bcrypt hash and is never serialized to JSON.
// Email is stored lowercased so uniqueness is case-insensitive; NameCI is the
// case/diacritics-folded name kept for search and sorting.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	Name       string             `bson:"name" json:"name"`
	NameCI     string             `bson:"name_ci" json:"-"`
	Image      *string            `bson:"image" json:"image"`
	Bio        string             `bson:"bio" json:"bio"`
	Role       string             `bson:"role" json:"role"` // user | admin
	IsVerified bool               `bson:"is_verified" json:"isVerified"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PublicUser is the subset of User returned alongside auth tokens.
type PublicUser struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
	Role  string  `json:"role"`
}

// Public returns the fields of u that are safe to hand to any client.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Email: u.Email,
		Name:  u.Name,
		Image: u.Image,
		Role:  u.Role,
	}
}

// ValidRole reports whether role is one of the defined user roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
