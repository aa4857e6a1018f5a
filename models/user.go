package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values stored on a user document.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or admin stored in MongoDB.
type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	FirstName string    `bson:"first_name" json:"first_name"`
	LastName  string    `bson:"last_name" json:"last_name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NewUser returns a user with a generated id and the default role.
func NewUser(email, firstName, lastName, phone string) *User {
	return &User{
		UserID:    uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Role:      RoleUser,
		CreatedAt: time.Now().UTC(),
	}
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}
