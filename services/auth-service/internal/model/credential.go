package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the access level attached to a credential at registration.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Credential is the authentication record for one email address. It is a
// separate record from the account itself and carries a back-reference to the
// account identifier owned by the user service.
type Credential struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	Role         Role          `bson:"role"`
	AccountID    string        `bson:"account_id"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}
