package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User document stored in "users". The owned-post list is not stored here;
// it is derived by querying posts by creator.
type User struct {
	ID           bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Name         string        `json:"name"      bson:"name"`
	Email        string        `json:"email"     bson:"email"`
	PasswordHash string        `json:"-"         bson:"password_hash"`
	Status       string        `json:"status"    bson:"status"`
	Role         string        `json:"role"      bson:"role"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updated_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
